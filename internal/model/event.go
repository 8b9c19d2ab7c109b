package model

import "time"

// MessageSource represents the channel an inbound message came from
type MessageSource string

const (
	SourceChatwoot MessageSource = "chatwoot"
	SourceN8N      MessageSource = "n8n"
	SourceTest     MessageSource = "test"
)

// InboundMessage is a chat message parsed from a webhook payload
type InboundMessage struct {
	Source         MessageSource          // Channel the message came from
	Text           string                 // Trimmed message content
	ConversationID string                 // Chatwoot conversation, empty for other sources
	Outgoing       bool                   // Sent by the inbox itself, never dispatched
	Context        map[string]interface{} // Metadata forwarded to the agent
	ReceivedAt     time.Time              // When the webhook was received
}

// Dispatchable reports whether the message should reach an agent.
func (m InboundMessage) Dispatchable() bool {
	return !m.Outgoing && m.Text != ""
}
