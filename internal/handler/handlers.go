package handler

import (
	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/handler/http"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/metrics"
	"github.com/MKhiriev/truvoice/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, cfg, logger),
	}, nil
}
