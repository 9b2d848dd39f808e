// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/model"
	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/rendering"
)

type statusHandler struct{}

func (h *statusHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	rendering.RenderJSONOrError(http.StatusOK, writer, request, model.NewStatusResponse())
}

// NewStatusHandler returns a new instance of http handler
// for serving /api/status.
func NewStatusHandler() http.Handler {
	return &statusHandler{}
}
