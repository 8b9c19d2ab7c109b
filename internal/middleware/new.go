package middleware

import (
	"mrdom-sdr/config"
	"mrdom-sdr/pkg/log"
)

type Middleware struct {
	l           log.Logger
	corsOrigins []string
	environment string
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		corsOrigins: cfg.App.CORSOrigins,
		environment: cfg.Environment.Name,
	}
}
