// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/model"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/rendering"
)

type healthHandler struct{}

func (h *healthHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	rendering.RenderJSONOrError(http.StatusOK, writer, request, model.NewHealthResponse())
}

// NewHealthHandler returns a new instance of http handler
// for serving /health.
func NewHealthHandler() http.Handler {
	return &healthHandler{}
}
