// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/truvoice/internal/config"
	"github.com/MKhiriev/truvoice/internal/logger"
	"github.com/MKhiriev/truvoice/internal/metrics"
	"github.com/MKhiriev/truvoice/internal/service"
)

// Handler serves the REST API on top of [service.Services].
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds a Handler. m may be nil, in which case no metrics are
// recorded and /api/metrics is not mounted.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
