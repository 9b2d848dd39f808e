// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"bytes"
	"net/http"
)

// ResponseWriterProxy buffers a handler's response so it can be
// converted into an API Gateway proxy response.
type ResponseWriterProxy struct {
	header     http.Header
	Body       bytes.Buffer
	StatusCode int
}

func NewResponseWriterProxy() *ResponseWriterProxy {
	return &ResponseWriterProxy{header: http.Header{}}
}

func (w *ResponseWriterProxy) Header() http.Header {
	return w.header
}

func (w *ResponseWriterProxy) Write(b []byte) (int, error) {
	if w.StatusCode == 0 {
		w.StatusCode = http.StatusOK
	}
	return w.Body.Write(b)
}

func (w *ResponseWriterProxy) WriteHeader(statusCode int) {
	if w.StatusCode == 0 {
		w.StatusCode = statusCode
	}
}

func (w *ResponseWriterProxy) Status() int {
	if w.StatusCode == 0 {
		return http.StatusOK
	}
	return w.StatusCode
}

func (w *ResponseWriterProxy) IsError() bool {
	return w.StatusCode != 0 && w.StatusCode/100 != 2
}
