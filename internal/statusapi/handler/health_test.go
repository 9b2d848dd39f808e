// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events/test"
	"github.com/stretchr/testify/assert"
)

const expectedHealthResponse = `{"status":"healthy","message":"Multimodal RAG System is running","day":1,"project":"Multimodal RAG System","next_milestone":"Database integration and document processing"}`

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler()
	request := httptest.NewRequest("GET", "/health", nil)
	responseRecorder := httptest.NewRecorder()

	handler.ServeHTTP(responseRecorder, request)

	assert.Equal(t, http.StatusOK, responseRecorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", responseRecorder.Header().Get("Content-Type"))
	test.AssertJsonsEqual(t, []byte(expectedHealthResponse), responseRecorder.Body.Bytes())
}

func TestHealthHandlerIsByteIdenticalAcrossCalls(t *testing.T) {
	handler := NewHealthHandler()

	var previous []byte
	for i := 0; i < 5; i++ {
		responseRecorder := httptest.NewRecorder()
		handler.ServeHTTP(responseRecorder, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, http.StatusOK, responseRecorder.Code)
		if previous != nil {
			assert.Equal(t, previous, responseRecorder.Body.Bytes())
		}
		previous = responseRecorder.Body.Bytes()
	}
}
