package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"rcloneexplorer/internal/api"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the explorer API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverConfig := a.cfg.GetServer()
			if cmd.Flags().Changed("host") {
				serverConfig.Host = host
			}
			if cmd.Flags().Changed("port") {
				serverConfig.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx, serverConfig.Host, serverConfig.Port, serverConfig.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen address (overrides server.host)")
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides server.port)")

	return cmd
}

// serve runs the HTTP API until ctx is done, then shuts down gracefully.
func (a *app) serve(ctx context.Context, host string, port int, shutdownTimeout time.Duration) error {
	router := mux.NewRouter()
	handlers := api.NewHandlers(a.catalog, a.lister, a.transfers, a.provisioner, a.cfg)
	handlers.RegisterRoutes(router)

	server := &http.Server{
		Addr:        net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:     router,
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
		// No write timeout: transfers and installs run to completion.
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	if a.configPath != "" {
		done := make(chan struct{})
		defer close(done)
		go a.cfg.Watch(a.configPath, done)
		go a.reloadLoggingOnChange(done)
	}

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutdown signal received, initiating graceful shutdown")

	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
		return err
	}

	slog.Info("shutdown completed")
	return nil
}

func (a *app) reloadLoggingOnChange(done <-chan struct{}) {
	changes := a.cfg.WatchForChanges()
	for {
		select {
		case <-done:
			return
		case <-changes:
			slog.Info("configuration changed, updating logging")
			a.setupLogging()
		}
	}
}
