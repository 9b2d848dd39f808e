// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multimodal-rag-system/bootstrap/internal/config"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var visitLine = regexp.MustCompile(`Visit http://localhost:(\d+) to see the application`)

func TestRunLogsStartupAndStopsOnCancel(t *testing.T) {
	output := &lockedBuffer{}
	logrus.SetOutput(output)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	cfg := config.Defaults()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Reload.Enabled = false

	router, err := newRouter(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg, "", router)
	}()

	require.Eventually(t, func() bool {
		return visitLine.MatchString(output.String())
	}, 5*time.Second, 10*time.Millisecond)

	logs := output.String()
	assert.Contains(t, logs, "Starting Multimodal RAG System - Day 1")

	port, err := strconv.Atoi(visitLine.FindStringSubmatch(logs)[1])
	require.NoError(t, err)
	assert.NotZero(t, port)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}

func TestRunFailsOnBusyPort(t *testing.T) {
	output := &lockedBuffer{}
	logrus.SetOutput(output)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	cfg := config.Defaults()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Reload.Enabled = false

	router, err := newRouter(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, cfg, "", router)
	}()
	require.Eventually(t, func() bool {
		return visitLine.MatchString(output.String())
	}, 5*time.Second, 10*time.Millisecond)
	port, err := strconv.Atoi(visitLine.FindStringSubmatch(output.String())[1])
	require.NoError(t, err)

	busy := config.Defaults()
	busy.Server.Host = "127.0.0.1"
	busy.Server.Port = port
	busy.Reload.Enabled = false
	assert.Error(t, run(context.Background(), busy, "", router))

	cancel()
	assert.NoError(t, <-done)
}
