// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/multimodal-rag-system/bootstrap/internal/config"
	"github.com/multimodal-rag-system/bootstrap/internal/gateway"
	"github.com/multimodal-rag-system/bootstrap/internal/logging"
	"github.com/multimodal-rag-system/bootstrap/internal/metrics"
	"github.com/multimodal-rag-system/bootstrap/internal/reload"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/model"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/openapi"
)

func main() {
	opts, err := getCLIArgs(os.Args[1:])
	if isHelp(err) {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(0)
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments: ", os.Args)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	logging.UseInternalFormatter()
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level")
	}

	router, err := newRouter(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to build router")
	}

	if opts.Lambda {
		log.Info("Serving API Gateway proxy events")
		lambda.Start(gateway.NewAdapter(router).Handle)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, opts.Config, router)
	stop()
	if errors.Is(err, reload.ErrChanged) {
		log.WithError(err).Info("Reloading")
		err = reexec()
	}
	if err != nil {
		log.WithError(err).Fatal("Status service stopped")
	}
}

func newRouter(cfg *config.Config) (http.Handler, error) {
	doc, err := openapi.NewDocument(context.Background(), model.DefaultAppInfo())
	if err != nil {
		return nil, err
	}

	deps := statusapi.RouterDeps{
		CORS:    cfg.CORS,
		OpenAPI: doc,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewCollector()
	}
	return statusapi.NewRouter(deps), nil
}

// run serves until ctx is cancelled, the server fails, or a watched
// file changes. The last case is reported as reload.ErrChanged.
func run(ctx context.Context, cfg *config.Config, configPath string, router http.Handler) error {
	server := statusapi.NewServer(cfg.Server.Host, cfg.Server.Port, router, statusapi.ServerOptions{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	if err := server.Listen(); err != nil {
		return err
	}

	log.Infof("🚀 Starting %s - Day 1", model.ProjectName)
	log.Infof("💡 Visit http://localhost:%d to see the application", server.Port())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Serve(ctx, cfg.Server.ShutdownTimeout)
	})

	if cfg.Reload.Enabled {
		watcher, err := newReloadWatcher(cfg, configPath)
		if err != nil {
			log.WithError(err).Warn("Auto-reload disabled")
		} else {
			defer watcher.Close()
			g.Go(func() error {
				return watcher.Run(ctx)
			})
		}
	}

	return g.Wait()
}

func newReloadWatcher(cfg *config.Config, configPath string) (*reload.Watcher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}

	paths := append([]string{exe}, cfg.Reload.Paths...)
	if configPath != "" {
		paths = append(paths, configPath)
	}
	log.WithField("paths", paths).Debug("Watching for changes")
	return reload.NewWatcher(cfg.Reload.Debounce, paths...)
}
