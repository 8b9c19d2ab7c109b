package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Chatwoot HMAC secret, empty disables verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per client, 0 disables
}

// Config wires the webhook handler to the integrations it reports on.
type Config struct {
	Security            SecurityConfig
	AutoResponseEnabled bool
	EscalationKeywords  []string

	ChatwootBaseURL   string
	ChatwootAccountID string
	ChatwootEnabled   bool

	N8NBaseURL string
	N8NEnabled bool
}

// messageReq is the body accepted by the n8n and test webhooks.
type messageReq struct {
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context"`
}

// WebhookResponse is the body returned by every webhook.
type WebhookResponse struct {
	Success   bool    `json:"success"`
	Response  *string `json:"response"`
	AgentUsed *string `json:"agent_used"`
	Error     *string `json:"error"`
}

type chatwootStatusResp struct {
	Enabled              bool   `json:"enabled"`
	BaseURL              string `json:"base_url"`
	AccountID            string `json:"account_id"`
	HMACSecretConfigured bool   `json:"hmac_secret_configured"`
	WebhookURL           string `json:"webhook_url"`
}

type n8nStatusResp struct {
	Enabled    bool   `json:"enabled"`
	BaseURL    string `json:"base_url"`
	WebhookURL string `json:"webhook_url"`
}

// chatwootPayload covers both the nested shape (message/conversation objects)
// and Chatwoot's flat message_created event.
type chatwootPayload struct {
	Event        string           `json:"event"`
	Message      *chatwootMessage `json:"message"`
	Conversation chatwootConvo    `json:"conversation"`
	Account      chatwootAccount  `json:"account"`
	MessageType  string           `json:"message_type"`
	Content      string           `json:"content"`
	Sender       map[string]any   `json:"sender"`
	CreatedAt    any              `json:"created_at"`
}

type chatwootMessage struct {
	MessageType string         `json:"message_type"`
	Content     string         `json:"content"`
	Sender      map[string]any `json:"sender"`
	CreatedAt   any            `json:"created_at"`
}

type chatwootConvo struct {
	ID        any             `json:"id"`
	AccountID any             `json:"account_id"`
	Contact   chatwootContact `json:"contact"`
	Meta      struct {
		Sender chatwootContact `json:"sender"`
	} `json:"meta"`
}

type chatwootContact struct {
	ID any `json:"id"`
}

type chatwootAccount struct {
	ID any `json:"id"`
}
