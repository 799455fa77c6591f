package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/project-roster/internal/apiclient"
	"github.com/bagdasarian/project-roster/internal/config"
	"github.com/bagdasarian/project-roster/internal/handler/server"
	"github.com/bagdasarian/project-roster/internal/logger"
	"github.com/bagdasarian/project-roster/internal/querycache"
	"github.com/bagdasarian/project-roster/internal/roster"
	"github.com/bagdasarian/project-roster/internal/web"
)

func main() {
	cfg := config.Load()
	log := logger.New("roster-web", cfg.Env)
	defer log.Sync()

	store, closeStore := newStore(cfg.Cache, log)
	defer closeStore()

	client := apiclient.New(cfg.Web.APIBaseURL, &http.Client{Timeout: cfg.Cache.FetchTimeout}, cfg.Session.CookieName)
	cache := querycache.New(store, cfg.Cache.FetchTimeout, log.With("component", "querycache"))

	view := roster.NewView(client, cache, roster.Features{
		Search:        cfg.Web.SearchEnabled,
		AdminControls: cfg.Web.AdminEnabled,
	}, cfg.Web.LoadTimeout, log.With("component", "roster"))

	h := web.NewHandler(view, cfg.Session.CookieName, log)
	srv := server.NewServer(web.NewRouter(h), cfg.Server.WebAddr, log)

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

// newStore выбирает Redis, если задан CACHE_REDIS_URL: тогда реплики делят один кэш
func newStore(cfg config.CacheConfig, log *logger.Logger) (querycache.Store, func()) {
	if cfg.RedisURL == "" {
		log.Infow("using in-memory query cache", "size", cfg.Size, "ttl", cfg.TTL)
		return querycache.NewMemoryStore(cfg.Size, cfg.TTL), func() {}
	}

	client, err := querycache.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("using redis query cache", "ttl", cfg.TTL)
	return querycache.NewRedisStore(client, cfg.TTL), func() { client.Close() }
}
