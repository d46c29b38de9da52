package mcpsqlited

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsqlite/mcpsqlite/internal/log"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/config"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/gateway"
	"github.com/nsqlite/mcpsqlite/internal/mcpsqlited/server"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal.
const shutdownTimeout = 10 * time.Second

// Run runs the mcpsqlited server.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewLogger(os.Stdout, conf.ParsedLogLevel)
	logger.Info("starting mcpsqlite server", log.KV{
		"db_path": conf.DbPath,
	})

	gw, err := gateway.NewGateway(gateway.Config{
		Logger:      logger,
		Path:        conf.DbPath,
		BusyTimeout: conf.BusyTimeout,
		ForeignKeys: conf.ForeignKeys,
	})
	if err != nil {
		return fmt.Errorf("error starting database gateway: %w", err)
	}

	serv, err := server.NewServer(server.Config{
		Logger:      logger,
		Gateway:     gw,
		ListenHost:  conf.ListenAddr,
		ListenPort:  conf.ListenPort,
		MaxBodySize: conf.MaxBodySize,
	})
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := serv.Stop(shutdownCtx); err != nil {
			logger.Error("error stopping server:", log.KV{"error": err})
		}
	}()
	go func() {
		if err := serv.Start(); err != nil {
			logger.Error("server stopped with error:", log.KV{"error": err})
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("goodbye! gracefully shutting down mcpsqlite server")
	return nil
}
