package chatwoot

import "errors"

const (
	MessageTypeIncoming = "incoming"
	MessageTypeOutgoing = "outgoing"
)

var (
	ErrNotConfigured       = errors.New("chatwoot: access token or account id not configured")
	ErrMissingConversation = errors.New("chatwoot: conversation id is required")
)

// SendMessageRequest is the payload for the create message endpoint.
type SendMessageRequest struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
	Private     bool   `json:"private"`
}
