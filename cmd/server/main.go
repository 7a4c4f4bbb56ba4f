// Command server runs the dashboard API.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"voicedash/api"
	"voicedash/internal/config"
	"voicedash/internal/logging"
	"voicedash/internal/store/memory"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("loading config", zap.Error(err))
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initializing logging", zap.Error(err))
	}
	defer logging.Sync()

	st := memory.NewAggregateMemoryStore()
	if cfg.Server.DataPath != "" {
		if err := st.LoadFile(context.Background(), cfg.Server.DataPath); err != nil {
			logging.Fatal("loading aggregate snapshot", zap.Error(err))
		}
		logging.Info("aggregate snapshot loaded", zap.String("path", cfg.Server.DataPath))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewServer(version, cfg, st),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", zap.Error(err))
		}
	case sig := <-stop:
		logging.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logging.Error("shutdown", zap.Error(err))
		}
	}
}
