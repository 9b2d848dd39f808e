// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/multimodal-rag-system/bootstrap/internal/config"
)

// Zero values mean "not given" so that the config file, if any, wins.
type options struct {
	LogLevel string `long:"log-level" env:"RAG_STATUS_LOG_LEVEL" description:"log level (default: info)"`
	Config   string `long:"config" env:"RAG_STATUS_CONFIG" description:"path to a YAML config file"`
	Host     string `long:"host" env:"RAG_STATUS_HOST" description:"listen host (default: 0.0.0.0)"`
	Port     int    `long:"port" env:"RAG_STATUS_PORT" description:"listen port (default: 8000)"`
	NoReload bool   `long:"no-reload" env:"RAG_STATUS_NO_RELOAD" description:"do not restart when the binary or config file changes"`
	Metrics  bool   `long:"metrics" env:"RAG_STATUS_METRICS" description:"expose Prometheus metrics at /metrics"`
	Lambda   bool   `long:"lambda" env:"RAG_STATUS_LAMBDA" description:"serve API Gateway proxy events instead of listening on a port"`
}

func getCLIArgs(args []string) (options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func isHelp(err error) bool {
	flagsErr, ok := err.(*flags.Error)
	return ok && flagsErr.Type == flags.ErrHelp
}

// loadConfig layers defaults, the optional config file and explicitly
// given options, in that order.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Defaults()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Host != "" {
		cfg.Server.Host = opts.Host
	}
	if opts.Port != 0 {
		cfg.Server.Port = opts.Port
	}
	if opts.NoReload || opts.Lambda {
		cfg.Reload.Enabled = false
	}
	if opts.Metrics {
		cfg.Metrics.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
