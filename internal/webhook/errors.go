package webhook

import "errors"

var (
	ErrSignatureInvalid  = errors.New("Assinatura inválida")
	ErrRateLimited       = errors.New("rate limit exceeded")
	ErrIPNotAllowed      = errors.New("ip not allowed")
	ErrMessageRequired   = errors.New("Campo 'message' é obrigatório")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrAgentsUnavailable = errors.New("Agentes não estão disponíveis")
)
