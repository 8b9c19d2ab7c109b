package webhook

const (
	HeaderChatwootSignature = "X-Chatwoot-Signature"

	ChatwootWebhookURL = "/api/v1/webhooks/chatwoot"
	N8NWebhookURL      = "/api/v1/webhooks/n8n"

	MessageTypeOutgoing = "outgoing"

	ResponseOutgoingIgnored = "Mensagem outgoing ignorada"
	ResponseEmptyIgnored    = "Mensagem vazia ignorada"
	ResponseEscalated       = "Mensagem encaminhada para atendimento humano"
	ErrorUnknown            = "Erro desconhecido"

	rateLimiterSize = 1000
)
