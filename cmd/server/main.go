package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/config"
	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/observability"
	"github.com/portfolioapi/internal/router"
	"github.com/portfolioapi/internal/seed"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolioapi",
		Short:         "Portfolio content API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := bootstrap()
				if err != nil {
					return err
				}
				if err := db.Init(cfg.Database, observability.NewGormLogger(logger)); err != nil {
					return fmt.Errorf("initialize database: %w", err)
				}
				logger.Info("database migrated", "driver", cfg.Database.Driver)
				return nil
			},
		},
		newSeedCmd(),
	)
	return root
}

func newSeedCmd() *cobra.Command {
	var opts seed.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty database with demo content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			if err := db.Init(cfg.Database, observability.NewGormLogger(logger)); err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}

			opts.Logger = logger
			if _, err := seed.Run(cmd.Context(), db.DB, opts); err != nil {
				if errors.Is(err, seed.ErrStoreNotEmpty) {
					logger.Warn("database already has content, skipping seed")
					return nil
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&opts.PublishedPosts, "posts", 12, "number of published posts")
	cmd.Flags().IntVar(&opts.DraftPosts, "drafts", 3, "number of draft posts")
	return cmd
}

func bootstrap() (config.AppConfig, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.AppConfig{}, nil, fmt.Errorf("load config: %w", err)
	}
	logger := observability.NewLogger(os.Stdout, cfg.AppEnv, cfg.LogLevel)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func runServe(parent context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
		Environment:  cfg.AppEnv,
	})
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	// 初始化数据库
	if err := db.Init(cfg.Database, observability.NewGormLogger(logger)); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	r := router.SetupRouter(db.DB, cfg, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.ListenAddr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	if sqlDB, err := db.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
