// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"ecommerce-backend/pkg/container"
)

// startServices chạy health check rồi mở endpoint /health cho worker
func startServices(c *container.Container) error {
	log.Info().Msg("🚀 Ecommerce Worker Starting...")

	checks := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"PostgreSQL", c.DB.HealthCheck},
		{"Cache", c.Cache.Ping},
	}

	for _, check := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := check.fn(ctx)
		cancel()
		if err != nil {
			log.Error().Err(err).Str("check", check.name).Msg("❌ Health check failed")
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("✓ Health check OK")
	}

	go startHealthCheckServer()
	return nil
}

func startHealthCheckServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"UP","service":"ecommerce-worker"}`))
	})

	log.Info().Msg("[Health] Starting health check server on :9999")
	if err := http.ListenAndServe(":9999", mux); err != nil {
		log.Error().Err(err).Msg("[Health] Failed to start")
	}
}
