// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

// StatusResponse is a response returned by the API server,
// providing development progress information.
type StatusResponse struct {
	Project        string   `json:"project"`
	Day            int      `json:"day"`
	Date           string   `json:"date"`
	CompletedTasks []string `json:"completed_tasks"`
	NextTasks      []string `json:"next_tasks"`
	Technologies   []string `json:"technologies"`
}

// NewStatusResponse returns a freshly built status payload. Slices are
// allocated per call so no two responses share backing arrays.
func NewStatusResponse() *StatusResponse {
	return &StatusResponse{
		Project: ProjectName,
		Day:     1,
		Date:    "2025-10-04",
		CompletedTasks: []string{
			"Project setup and directory structure",
			"FastAPI application with health endpoints",
			"Docker configuration",
			"Initial documentation and README",
		},
		NextTasks: []string{
			"Database setup with PostgreSQL and Redis",
			"Document processing pipeline implementation",
			"Core configuration management",
			"AI model integration",
		},
		Technologies: []string{
			"FastAPI",
			"Python 3.9+",
			"Docker",
			"LangChain",
			"ChromaDB",
			"OpenAI",
		},
	}
}
