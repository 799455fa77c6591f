package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/project-roster/internal/config"
	"github.com/bagdasarian/project-roster/internal/db"
	"github.com/bagdasarian/project-roster/internal/handler"
	"github.com/bagdasarian/project-roster/internal/handler/server"
	"github.com/bagdasarian/project-roster/internal/logger"
	"github.com/bagdasarian/project-roster/internal/repository/postgres"
	"github.com/bagdasarian/project-roster/internal/service"
	"github.com/bagdasarian/project-roster/internal/session"
)

func main() {
	cfg := config.Load()
	log := logger.New("roster-api", cfg.Env)
	defer log.Sync()

	database := db.MustLoad(cfg)
	log.Info("successfully connected to database")
	defer database.Close()

	projectRepo := postgres.NewProjectRepository(database)
	memberRepo := postgres.NewMemberRepository(database)

	projectService := service.NewProjectService(projectRepo)
	memberService := service.NewMemberService(memberRepo, projectRepo)

	sessions := session.NewVerifier(cfg.Session.Secret, cfg.Session.CookieName)

	h := handler.NewHandler(projectService, memberService, sessions, log)
	srv := server.NewServer(server.NewRouter(h), cfg.Server.APIAddr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}
}
