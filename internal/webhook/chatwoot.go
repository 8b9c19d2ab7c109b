package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mrdom-sdr/internal/model"
)

// parseChatwootPayload turns a Chatwoot webhook body into an InboundMessage.
func parseChatwootPayload(body []byte) (model.InboundMessage, error) {
	var payload chatwootPayload

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return model.InboundMessage{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	msg := payload.Message
	if msg == nil {
		msg = &chatwootMessage{
			MessageType: payload.MessageType,
			Content:     payload.Content,
			Sender:      payload.Sender,
			CreatedAt:   payload.CreatedAt,
		}
	}

	accountID := payload.Conversation.AccountID
	if accountID == nil {
		accountID = payload.Account.ID
	}
	contactID := payload.Conversation.Contact.ID
	if contactID == nil {
		contactID = payload.Conversation.Meta.Sender.ID
	}
	sender := msg.Sender
	if sender == nil {
		sender = map[string]any{}
	}

	return model.InboundMessage{
		Source:         model.SourceChatwoot,
		Text:           strings.TrimSpace(msg.Content),
		ConversationID: idString(payload.Conversation.ID),
		Outgoing:       msg.MessageType == MessageTypeOutgoing,
		Context: map[string]interface{}{
			"conversation_id": payload.Conversation.ID,
			"account_id":      accountID,
			"contact_id":      contactID,
			"sender":          sender,
			"timestamp":       msg.CreatedAt,
			"source":          string(model.SourceChatwoot),
		},
		ReceivedAt: time.Now(),
	}, nil
}

// containsEscalation reports whether text asks for a human.
func containsEscalation(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func idString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case json.Number:
		return t.String()
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
