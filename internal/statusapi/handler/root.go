// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	_ "embed"
	"net/http"

	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/rendering"
)

//go:embed static/index.html
var indexPage string

type rootHandler struct{}

func (h *rootHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	rendering.RenderHTML(http.StatusOK, writer, request, indexPage)
}

// NewRootHandler returns a new instance of http handler
// for serving the landing page at /.
func NewRootHandler() http.Handler {
	return &rootHandler{}
}
