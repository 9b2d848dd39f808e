// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package openapi describes the status service routes as an OpenAPI 3
// document, served at /openapi.json.
package openapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/multimodal-rag-system/bootstrap/internal/statusapi/model"
)

const Version = "3.0.3"

// NewDocument builds and validates the OpenAPI document for the service.
func NewDocument(ctx context.Context, info model.AppInfo) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       info.Title,
			Description: info.Description,
			Version:     info.Version,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/", &openapi3.PathItem{
				Get: operation("root", "Landing page", htmlResponse("Project landing page")),
			}),
			openapi3.WithPath("/health", &openapi3.PathItem{
				Get: operation("health_check", "Health check", jsonResponse("Service is alive", healthSchema())),
			}),
			openapi3.WithPath("/api/status", &openapi3.PathItem{
				Get: operation("api_status", "API status with development progress", jsonResponse("Development progress", statusSchema())),
			}),
		),
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi document: %w", err)
	}
	return doc, nil
}

func operation(id, summary string, ok *openapi3.Response) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: id,
		Summary:     summary,
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: ok}),
		),
	}
}

func htmlResponse(description string) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/html"}))
}

func jsonResponse(description string, schema *openapi3.Schema) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchema(schema)
}

func stringList() *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
}

func healthSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("day", openapi3.NewIntegerSchema()).
		WithProperty("project", openapi3.NewStringSchema()).
		WithProperty("next_milestone", openapi3.NewStringSchema())
	schema.Required = []string{"status", "message", "day", "project", "next_milestone"}
	return schema
}

func statusSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().
		WithProperty("project", openapi3.NewStringSchema()).
		WithProperty("day", openapi3.NewIntegerSchema()).
		WithProperty("date", openapi3.NewStringSchema().WithFormat("date")).
		WithProperty("completed_tasks", stringList()).
		WithProperty("next_tasks", stringList()).
		WithProperty("technologies", stringList())
	schema.Required = []string{"project", "day", "date", "completed_tasks", "next_tasks", "technologies"}
	return schema
}
