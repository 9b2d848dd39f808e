// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package gateway serves an http.Handler through AWS Lambda API Gateway
// proxy integration events.
package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	log "github.com/sirupsen/logrus"
)

// Adapter converts API Gateway proxy events to HTTP requests.
type Adapter struct {
	handler http.Handler
}

// NewAdapter returns an Adapter dispatching to handler.
func NewAdapter(handler http.Handler) *Adapter {
	return &Adapter{handler: handler}
}

// Handle is the Lambda entry point. Errors are only returned when the
// event cannot be turned into a request; handler failures are already
// encoded in the response status.
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	request, err := NewRequest(ctx, event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	proxy := NewResponseWriterProxy()
	a.handler.ServeHTTP(proxy, request)

	if proxy.IsError() {
		log.WithFields(log.Fields{
			"method": event.HTTPMethod,
			"path":   event.Path,
			"status": proxy.StatusCode,
		}).Debug("gateway: handler returned error status")
	}

	return NewResponse(proxy), nil
}

// NewRequest builds an *http.Request from an API Gateway proxy event.
func NewRequest(ctx context.Context, event events.APIGatewayProxyRequest) (*http.Request, error) {
	path := event.Path
	if path == "" {
		path = "/"
	}

	u := url.URL{Path: path}
	query := url.Values{}
	for key, values := range event.MultiValueQueryStringParameters {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	for key, value := range event.QueryStringParameters {
		if _, ok := query[key]; !ok {
			query.Set(key, value)
		}
	}
	u.RawQuery = query.Encode()

	var body io.Reader
	if event.Body != "" {
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return nil, fmt.Errorf("decode base64 body: %w", err)
			}
			body = strings.NewReader(string(decoded))
		} else {
			body = strings.NewReader(event.Body)
		}
	}

	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	request, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request for %s %s: %w", method, path, err)
	}

	for key, values := range event.MultiValueHeaders {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	for key, value := range event.Headers {
		if request.Header.Get(key) == "" {
			request.Header.Set(key, value)
		}
	}
	if host := request.Header.Get("Host"); host != "" {
		request.Host = host
	}
	request.RemoteAddr = event.RequestContext.Identity.SourceIP

	return request, nil
}

// NewResponse converts a captured handler response into an API Gateway
// proxy response.
func NewResponse(proxy *ResponseWriterProxy) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(proxy.Header()))
	multiValueHeaders := make(map[string][]string, len(proxy.Header()))
	for key, values := range proxy.Header() {
		if len(values) == 0 {
			continue
		}
		headers[key] = values[0]
		multiValueHeaders[key] = append([]string(nil), values...)
	}

	return events.APIGatewayProxyResponse{
		StatusCode:        proxy.Status(),
		Headers:           headers,
		MultiValueHeaders: multiValueHeaders,
		Body:              proxy.Body.String(),
	}
}
