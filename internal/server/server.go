// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/avetrov/agencydesk/internal/config"
	httphandler "github.com/avetrov/agencydesk/internal/handler/http"
	"github.com/avetrov/agencydesk/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server over the handler's route tree.
func NewServer(handler *httphandler.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer launches the HTTP server and blocks until an interrupt or
// termination signal arrives, then drains it gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown drains the HTTP server.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
