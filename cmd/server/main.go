package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sauticheck/sauticheck-api/internal/config"
	"github.com/sauticheck/sauticheck-api/internal/server"
	"github.com/sauticheck/sauticheck-api/internal/storage"
	"github.com/sauticheck/sauticheck-api/internal/storage/memory"
	"github.com/sauticheck/sauticheck-api/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}
	defer cleanup()

	srv := server.New(cfg, store)

	go func() {
		log.Printf("SautiCheck API listening on %s", cfg.HTTPAddress())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

// openStore picks Postgres when DATABASE_URL is set, otherwise the seeded
// in-memory store. Both back the same storage.Store interface.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		email := cfg.AdminEmail
		if email == "" {
			email = "admin@sauticheck.com"
		}
		if cfg.AdminPasswordHash != "" {
			if err := pg.EnsureAdmin(ctx, email, cfg.AdminPasswordHash); err != nil {
				pg.Close()
				return nil, nil, err
			}
		}
		return pg, pg.Close, nil
	}

	mem, err := memory.NewSeeded(memory.SeedOptions{
		AdminEmail:        cfg.AdminEmail,
		AdminPasswordHash: cfg.AdminPasswordHash,
		FixtureFile:       cfg.SeedFile,
	})
	if err != nil {
		return nil, nil, err
	}
	return mem, func() {}, nil
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
