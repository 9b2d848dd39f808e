// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/rendering"
)

type openAPIHandler struct {
	document *openapi3.T
}

func (h *openAPIHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	rendering.RenderJSONOrError(http.StatusOK, writer, request, h.document)
}

// NewOpenAPIHandler returns a new instance of http handler
// for serving /openapi.json. The document must not be modified afterwards.
func NewOpenAPIHandler(document *openapi3.T) http.Handler {
	return &openAPIHandler{document: document}
}
