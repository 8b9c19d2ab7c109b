package agent

import "errors"

var (
	ErrUnknownAgent      = errors.New("tipo de agente não encontrado")
	ErrMissingField      = errors.New("campo obrigatório ausente")
	ErrBackend           = errors.New("falha no modelo")
	ErrAgentsUnavailable = errors.New("agentes não estão disponíveis")
	ErrInvalidContext    = errors.New("contexto inválido")
)
