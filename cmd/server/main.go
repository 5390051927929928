package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/factflip/backend/internal/api"
	"github.com/factflip/backend/internal/infrastructure/config"
	"github.com/factflip/backend/internal/service"
	"github.com/factflip/backend/internal/store"

	_ "github.com/factflip/backend/docs" // generated swagger docs
)

// @title           FactFlip API
// @version         1.0
// @description     Study decks of facts with SM-2 spaced repetition, custom sessions and achievements.

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "factflip",
		Short:        "Spaced-repetition fact study server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cmd.Flags(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	config.RegisterFlags(root.PersistentFlags())

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cmd.Flags(), configPath)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <path>...",
		Short: "Store deck files or directories of deck files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importDecks(cmd, configPath, args)
		},
	}

	root.AddCommand(serveCmd, importCmd)
	return root
}

// open loads the configuration and builds the study service over its store.
func open(ctx context.Context, flags *pflag.FlagSet, configPath string) (*config.Config, *store.SQLiteStore, *service.StudyService, *slog.Logger, error) {
	cfg, err := config.Load(flags, configPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	logger := cfg.NewLogger()

	db, err := store.NewSQLite(cfg.DB.Path)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	svcCfg := service.DefaultConfig()
	svcCfg.Params = cfg.Params()
	svcCfg.SamplePath = cfg.Decks.Sample
	svcCfg.Workers = cfg.Workers
	svc := service.NewStudyService(db, svcCfg, logger)

	if err := svc.Restore(ctx); err != nil {
		db.Close()
		return nil, nil, nil, nil, err
	}
	return cfg, db, svc, logger, nil
}

func serve(ctx context.Context, flags *pflag.FlagSet, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, db, svc, logger, err := open(ctx, flags, configPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// ── Deck sources ────────────────────────────────────────────────
	switch {
	case cfg.Decks.GitURL != "":
		dir := cfg.Decks.Dir
		if dir == "" {
			dir = "decks"
		}
		if _, err := svc.SyncGitSource(ctx, cfg.Decks.GitURL, dir); err != nil {
			logger.Warn("deck repository sync failed", "url", cfg.Decks.GitURL, "error", err)
		}
	case cfg.Decks.Dir != "":
		if _, err := svc.ImportDirectory(ctx, cfg.Decks.Dir); err != nil {
			logger.Warn("deck directory import failed", "dir", cfg.Decks.Dir, "error", err)
		}
	}

	// ── Routes ──────────────────────────────────────────────────────
	var limiter *api.RateLimiter
	if cfg.Upload.RatePerMinute > 0 {
		limiter = api.NewRateLimiter(cfg.Upload.RatePerMinute)
	}
	handler := api.NewHandler(svc, cfg.Upload.MaxBytes, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler, limiter)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.Server.Address, "db", cfg.DB.Path)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		return err
	}
	return nil
}

func importDecks(cmd *cobra.Command, configPath string, paths []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, db, svc, _, err := open(ctx, cmd.Flags(), configPath)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		if !info.IsDir() {
			d, err := svc.ImportFile(ctx, path)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "%s: imported %q (%d facts)\n", path, d.Name, d.Count())
			continue
		}

		report, err := svc.ImportDirectory(ctx, path)
		if err != nil {
			return err
		}
		for _, name := range report.Imported {
			fmt.Fprintf(out, "%s: imported %q\n", path, name)
		}
		failed := make([]string, 0, len(report.Failed))
		for file := range report.Failed {
			failed = append(failed, file)
		}
		sort.Strings(failed)
		for _, file := range failed {
			fmt.Fprintf(out, "%s/%s: %s\n", path, file, report.Failed[file])
		}
	}
	return nil
}
