package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nikmy/interviewme/internal/api"
	"github.com/nikmy/interviewme/internal/matching"
	"github.com/nikmy/interviewme/internal/notify"
	"github.com/nikmy/interviewme/internal/repo"
	"github.com/nikmy/interviewme/internal/scheduling"
	"github.com/nikmy/interviewme/pkg/errors"
	"github.com/nikmy/interviewme/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string
	envName    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scheduling HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(configPath, envName)
		if err != nil {
			return errors.WrapFail(err, "load config")
		}

		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to yaml config")
	serveCmd.Flags().StringVar(&envName, "env", "", "environment (dev, prod)")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *Config) error {
	log, err := logger.New(cfg.Environment)
	if err != nil {
		return errors.WrapFail(err, "init logger")
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	client, err := repo.New(ctx, log, cfg.Storage)
	if err != nil {
		return errors.WrapFail(err, "init storage")
	}

	notifier, err := notify.New(cfg.Notify, log)
	if err != nil {
		return errors.Join(errors.WrapFail(err, "init notifier"), client.Close(context.Background()))
	}

	engine := matching.New(
		log,
		client.Availability(),
		client.Persons(),
		matching.NewPolicy(cfg.Scheduling.Policy, cfg.Scheduling.Seed),
	)

	service := scheduling.New(log, cfg.Scheduling, client, engine, notifier)
	server := api.NewServer(cfg.API, log, service)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Infof("listening on %s", cfg.API.HTTP.Addr)
		return server.Serve(ctx)
	})

	group.Go(func() error {
		<-ctx.Done()
		log.Infof("graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			server.Shutdown(shutdownCtx),
			errors.WrapFail(notifier.Close(), "close notifier"),
			errors.WrapFail(client.Close(shutdownCtx), "close storage"),
		)
	})

	err = group.Wait()
	if err != nil {
		return err
	}

	log.Infof("shutdown complete")
	return nil
}
