package http

import (
	"errors"
	"net/http"

	"mrdom-sdr/internal/agent"
)

var (
	errAgentsUnavailable = errors.New("Agentes não estão disponíveis. Verifique configuração AWS Bedrock.")
	errMessageRequired   = errors.New("Campo 'message' é obrigatório")
)

// mapError translates use-case errors into an HTTP status and client-facing error.
func (h *handler) mapError(err error) (int, error) {
	switch {
	case errors.Is(err, agent.ErrAgentsUnavailable):
		return http.StatusServiceUnavailable, errAgentsUnavailable
	case errors.Is(err, agent.ErrMissingField):
		return http.StatusBadRequest, err
	case errors.Is(err, agent.ErrInvalidContext):
		return http.StatusBadRequest, err
	case errors.Is(err, agent.ErrUnknownAgent):
		return http.StatusBadRequest, err
	case errors.Is(err, agent.ErrBackend):
		return http.StatusInternalServerError, err
	default:
		return http.StatusInternalServerError, err
	}
}
