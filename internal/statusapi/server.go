// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package statusapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Server is the status API server
type Server struct {
	host     string
	port     int
	server   *http.Server
	listener net.Listener
}

// ServerOptions tunes the underlying http.Server.
type ServerOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewServer creates a new status API Server
//
// Unlike net/http server's ListenAndServe, we separate Listen()
// and Serve(), this is done so the bound port is known, and
// logged, before the first request is accepted.
//
// When port is 0, OS will dynamically allocate the listening port.
func NewServer(host string, port int, handler http.Handler, opts ServerOptions) *Server {
	return &Server{
		host: host,
		port: port,
		server: &http.Server{
			Handler:      handler,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
		},
	}
}

// Listen on port
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.host, fmt.Sprint(s.port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	s.listener = ln
	if s.port == 0 {
		s.port = ln.Addr().(*net.TCPAddr).Port
		log.WithField("port", s.port).Info("Listening port was dynamically allocated")
	}

	log.Debugf("Status API Server listening on %s:%d", s.host, s.port)

	return nil
}

func (s *Server) IsListening() bool {
	return s.listener != nil
}

// Serve requests until ctx is cancelled, then shut down gracefully
// within shutdownTimeout.
func (s *Server) Serve(ctx context.Context, shutdownTimeout time.Duration) error {
	if s.listener == nil {
		return errors.New("status API server is not listening")
	}

	select {
	case err := <-s.serveAsync():
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

func (s *Server) serveAsync() chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.listener)
	}()

	return errCh
}

// Host is server's host
func (s *Server) Host() string {
	return s.host
}

// Port is server's port
func (s *Server) Port() int {
	return s.port
}

// URL is full server url for specified endpoint
func (s *Server) URL(endpoint string) string {
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(s.Host(), fmt.Sprint(s.Port())), endpoint)
}

// Close forcefully closes listeners & connections
func (s *Server) Close() error {
	err := s.server.Close()
	if s.listener != nil {
		// already closed if Serve was running
		_ = s.listener.Close()
	}
	if err == nil {
		log.Info("Status API Server closed")
	}
	return err
}

// Shutdown gracefully shuts down server, draining in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("Shutting down Status API Server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("status API server shutdown: %w", err)
	}
	return nil
}
