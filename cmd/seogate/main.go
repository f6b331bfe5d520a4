// Package main provides the seogate CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/howaiconnects/seogate/airtable"
	"github.com/howaiconnects/seogate/api"
	"github.com/howaiconnects/seogate/config"
	"github.com/howaiconnects/seogate/generation"
	"github.com/howaiconnects/seogate/hootsuite"
	"github.com/howaiconnects/seogate/internal/logger"
	"github.com/howaiconnects/seogate/prompts"
	"github.com/howaiconnects/seogate/scrape"
	"github.com/howaiconnects/seogate/semrush"
	"github.com/howaiconnects/seogate/storage"
)

var (
	// Global flags
	addr     string
	logLevel string
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "seogate",
		Short: "SEO automation API gateway",
		Long: `An API gateway that orchestrates AI-driven SEO workflows.

It resolves prompt templates from a managed prompt service (with built-in
fallbacks), routes generation to tiered AI models, parses responses into
structured analyses, ranks keyword opportunities, and persists results.`,
	}

	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "Listen address (overrides SERVER_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger.Init(cfg.LogLevel)

			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Settings) error {
	generator, err := generation.NewService(cfg.LLM)
	if err != nil {
		return fmt.Errorf("generation service: %w", err)
	}

	resolver := prompts.NewResolver(cfg.Latitude)
	if resolver.Connected() {
		logger.Log.Info("prompt service connected")
	} else {
		logger.Log.Info("prompt service not configured, using built-in fallbacks")
	}

	records, err := newRecordStore(cfg)
	if err != nil {
		return fmt.Errorf("record store: %w", err)
	}
	defer records.Close()

	srv := api.NewServer(cfg.Server, api.Deps{
		Resolver:  resolver,
		Generator: generator,
		Records:   records,
		SEMrush:   semrush.NewClient(cfg.SEMrush.BaseURL, cfg.SEMrush.APIKey, cfg.SEMrush.Database),
		Hootsuite: hootsuite.NewClient(cfg.Hootsuite.BaseURL, cfg.Hootsuite.AccessToken),
		Scraper:   scrape.NewScraper(),
	})

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Log.WithField("addr", cfg.Server.Addr).Info("server listening")
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// newRecordStore selects the record backend: the hosted base when configured,
// local sqlite otherwise.
func newRecordStore(cfg config.Settings) (storage.RecordStore, error) {
	if cfg.Airtable.APIKey != "" && cfg.Airtable.BaseID != "" {
		logger.Log.Info("using hosted record base")
		return airtable.NewClient(cfg.Airtable.BaseURL, cfg.Airtable.APIKey, cfg.Airtable.BaseID), nil
	}
	logger.Log.WithField("path", cfg.Server.SQLitePath).Info("using local sqlite records")
	return storage.OpenSqlite(cfg.Server.SQLitePath)
}

func healthCmd() *cobra.Command {
	var timeout int

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check AI provider connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel)

			generator, err := generation.NewService(cfg.LLM)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(timeout)*time.Second)
			defer cancel()

			if !generator.HealthCheck(ctx) {
				return fmt.Errorf("provider health check failed")
			}
			if !prompts.NewResolver(cfg.Latitude).StoreHealthy(ctx) {
				return fmt.Errorf("prompt store health check failed")
			}
			fmt.Println("healthy")
			return nil
		},
	}

	cmd.Flags().IntVar(&timeout, "timeout", 30, "Timeout in seconds")

	return cmd
}
