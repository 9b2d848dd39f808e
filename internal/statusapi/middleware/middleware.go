// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/multimodal-rag-system/bootstrap/internal/config"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/rendering"
)

// RequestIDHeader carries the per-request identifier on every response.
const RequestIDHeader = "X-Request-Id"

type ctxKey int

const requestIDCtxKey ctxKey = iota

// RequestIDFromContext returns the identifier assigned by RequestIDMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)
	return id
}

// RequestIDMiddleware assigns a random UUID to each request and echoes it
// in the X-Request-Id response header.
func RequestIDMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New().String()
			w.Header().Set(RequestIDHeader, id)
			r = r.WithContext(context.WithValue(r.Context(), requestIDCtxKey, id))
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// AccessLogMiddleware writes api access log.
func AccessLogMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			entry := log.WithFields(log.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"duration":   time.Since(start),
				"request_id": RequestIDFromContext(r.Context()),
			})
			if status/100 == 5 {
				entry.Error("API request")
			} else {
				entry.Debug("API request")
			}
		}
		return http.HandlerFunc(fn)
	}
}

// RecovererMiddleware turns a handler panic into a 500 response.
func RecovererMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.WithFields(log.Fields{
					"panic":      rvr,
					"path":       r.URL.Path,
					"request_id": RequestIDFromContext(r.Context()),
				}).Error("Recovered from panic in HTTP handler")
				rendering.RenderInternalServerError(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CORSMiddleware applies the configured cross-origin policy. Preflight
// requests are answered here and never reach the router.
//
// A "*" origin is answered with the caller's own Origin, since browsers
// refuse a literal "*" on credentialed requests. A "*" method allows
// whatever method the request or preflight names.
func CORSMiddleware(policy config.CORSConfig) func(next http.Handler) http.Handler {
	options := cors.Options{
		AllowedOrigins:   policy.AllowedOrigins,
		AllowedMethods:   policy.AllowedMethods,
		AllowedHeaders:   policy.AllowedHeaders,
		AllowCredentials: policy.AllowCredentials,
	}
	if containsWildcard(policy.AllowedOrigins) {
		options.AllowedOrigins = nil
		options.AllowOriginFunc = func(*http.Request, string) bool { return true }
	}
	if !containsWildcard(policy.AllowedMethods) {
		return cors.Handler(options)
	}

	common := options
	common.AllowedMethods = commonMethods
	shared := cors.New(common)

	return func(next http.Handler) http.Handler {
		sharedHandler := shared.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := corsMethod(r)
			if isCommonMethod(method) {
				sharedHandler.ServeHTTP(w, r)
				return
			}
			single := options
			single.AllowedMethods = []string{method}
			cors.New(single).Handler(next).ServeHTTP(w, r)
		})
	}
}

var commonMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
	http.MethodConnect, http.MethodTrace,
}

// corsMethod is the method the CORS check applies to: the requested one
// for a preflight, the request's own otherwise.
func corsMethod(r *http.Request) string {
	if r.Method == http.MethodOptions {
		if requested := r.Header.Get("Access-Control-Request-Method"); requested != "" {
			return strings.ToUpper(requested)
		}
	}
	return strings.ToUpper(r.Method)
}

func isCommonMethod(method string) bool {
	for _, m := range commonMethods {
		if m == method {
			return true
		}
	}
	return false
}

func containsWildcard(values []string) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
	}
	return false
}
