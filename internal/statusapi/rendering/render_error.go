// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rendering

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/model"
)

// RenderInternalServerError method for rendering error response
func RenderInternalServerError(w http.ResponseWriter, r *http.Request) {
	if err := RenderJSON(http.StatusInternalServerError, w, r, &model.ErrorResponse{
		ErrorMessage: "Internal Server Error",
		ErrorType:    ErrorTypeInternalServerError,
	}); err != nil {
		log.WithError(err).Warn("Error while rendering response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RenderJSONOrError renders v, falling back to an internal server error
// response when v cannot be encoded.
func RenderJSONOrError(status int, w http.ResponseWriter, r *http.Request, v interface{}) {
	if err := RenderJSON(status, w, r, v); err != nil {
		log.WithError(err).Warn("Error while rendering response")
		RenderInternalServerError(w, r)
	}
}
