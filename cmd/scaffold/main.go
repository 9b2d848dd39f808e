// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/multimodal-rag-system/bootstrap/internal/logging"
	"github.com/multimodal-rag-system/bootstrap/internal/scaffold"
)

type options struct {
	LogLevel string `long:"log-level" default:"info" description:"log level"`
	Output   string `long:"output" short:"o" default:"project_files/setup_projects.sh" description:"where to write the setup script; the directory must exist"`
}

func main() {
	opts, err := getCLIArgs(os.Args[1:])
	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(0)
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments: ", os.Args)
	}

	logging.UseInternalFormatter()
	if err := logging.SetLevel(opts.LogLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level")
	}

	log.WithField("path", opts.Output).Debug("Writing setup script")
	if err := scaffold.Generate(os.Stdout, opts.Output); err != nil {
		log.WithError(err).Fatal("Failed to create setup script")
	}
}

func getCLIArgs(args []string) (options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return opts, err
}
