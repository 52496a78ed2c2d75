package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomasz450/analityka/internal/api"
	"github.com/tomasz450/analityka/internal/api/handlers"
	"github.com/tomasz450/analityka/internal/gold"
)

// apiCmd represents the api command.
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the gold-price dashboard API",
	Long: `Starts the HTTP API backing the dashboard.

Endpoints:
  GET /health
  GET /api/gold/prices?start=...&end=...
  GET /api/gold/current
  GET /api/gold/export`,
	RunE: runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	client := gold.NewClient(rt.cfg, rt.httpClient, rt.log)
	session := gold.NewSession()
	goldHandler := handlers.NewGoldHandler(client, session, rt.log)

	router := api.NewRouter(goldHandler, rt.log)
	server := api.New(rt.cfg, rt.log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		rt.log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}
