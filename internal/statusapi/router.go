// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package statusapi

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi"

	"github.com/multimodal-rag-system/bootstrap/internal/config"
	"github.com/multimodal-rag-system/bootstrap/internal/metrics"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/handler"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/middleware"
)

// RouterDeps holds what the router needs; it is read-only once built.
type RouterDeps struct {
	CORS    config.CORSConfig
	OpenAPI *openapi3.T
	// Metrics is optional; when nil /metrics is not mounted.
	Metrics *metrics.Collector
}

// NewRouter returns a new instance of chi router serving the
// status endpoints. Methods other than GET on a known route are
// answered with 405 by chi itself.
func NewRouter(deps RouterDeps) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.AccessLogMiddleware())
	router.Use(middleware.RecovererMiddleware)
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware)
	}
	router.Use(middleware.CORSMiddleware(deps.CORS))

	router.Get("/", handler.NewRootHandler().ServeHTTP)
	router.Get("/health", handler.NewHealthHandler().ServeHTTP)
	router.Get("/api/status", handler.NewStatusHandler().ServeHTTP)

	if deps.OpenAPI != nil {
		router.Get("/openapi.json", handler.NewOpenAPIHandler(deps.OpenAPI).ServeHTTP)
	}

	if deps.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	return router
}
