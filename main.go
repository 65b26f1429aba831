package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alocar/backend/internal/config"
	v1 "github.com/alocar/backend/pkg/controllers/v1"
	"github.com/alocar/backend/pkg/events"
	"github.com/alocar/backend/pkg/format"
	"github.com/alocar/backend/pkg/models"
	"github.com/alocar/backend/pkg/router"
	"github.com/alocar/backend/pkg/store"
	"github.com/alocar/backend/pkg/view"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "alocar",
		Short: "Backend for splitting income across investment accounts",
		Long: `Alocar splits every recorded income across your investment accounts by
their capital allocation percentage (CAP) and keeps a dashboard of the totals.

Configuration is read from the environment and, if present, from .env files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv(envFiles...)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Files to read environment variables from (default .env)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema to the latest version and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "alocar version %s\n", router.Version)
		},
	})

	return cmd
}

// setup loads and validates the configuration and configures logging.
func setup() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	gin.SetMode(cfg.GinMode)

	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return cfg, nil
}

// connect creates the data directory and opens the database, which
// migrates the schema.
func connect(cfg *config.Config) (*gorm.DB, error) {
	err := os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(cfg.DSN())
}

func migrate() error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	db, err := connect(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Database")
		return err
	}

	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	version, err := models.SchemaVersion(db)
	if err != nil {
		log.Error().Err(err).Msg("Database")
		return err
	}

	log.Info().Int("version", version).Str("file", cfg.DSN()).Msg("schema is up to date")
	return nil
}

func serve(ctx context.Context) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	db, err := connect(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Database")
		return err
	}

	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	s := store.New(db, cfg.UserID)

	// Publishing is optional, the API works without a broker
	if cfg.AMQPURL != "" {
		publisher, err := events.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Error().Err(err).Msg("AMQP")
			return err
		}
		defer publisher.Close()

		stop := publisher.Forward(s)
		defer stop()

		log.Info().Str("exchange", cfg.AMQPExchange).Msg("publishing changes")
	}

	watcher := view.Watch(s, nil)
	defer watcher.Close()

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Router")
		return err
	}
	defer teardown()

	co := v1.Controller{
		Store:     s,
		Dashboard: watcher,
		Format:    format.New(cfg.Locale),
	}
	router.AttachRoutes(cfg, co, db, r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", router.Version).Msg("backend startup complete")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		if err != nil {
			log.Error().Err(err).Msg("Server")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
