package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bagdasarian/project-roster/internal/logger"
)

type Server struct {
	server *http.Server
	log    *logger.Logger
}

func NewServer(handler http.Handler, addr string, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func (s *Server) Start() error {
	s.log.Infow("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
