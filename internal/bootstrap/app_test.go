package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-planner/internal/domain/weather"
	"github.com/yanqian/weather-planner/internal/infra/config"
	"github.com/yanqian/weather-planner/internal/infra/scheduler"
)

type noopRefresher struct{}

func (noopRefresher) Refresh(ctx context.Context, coords weather.Coordinates) error { return nil }

func TestRunStopsOnContextCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	warmer := scheduler.NewWarmer(scheduler.Config{}, noopRefresher{}, logger)
	app := NewApp(cfg, logger, server, warmer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestRunReturnsListenErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "bad-address"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NotFoundHandler()}
	app := NewApp(cfg, logger, server, scheduler.NewWarmer(scheduler.Config{}, noopRefresher{}, logger))

	require.Error(t, app.Run(context.Background()))
}
