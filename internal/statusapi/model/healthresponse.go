// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Day           int    `json:"day"`
	Project       string `json:"project"`
	NextMilestone string `json:"next_milestone"`
}

// NewHealthResponse returns a freshly built health payload.
func NewHealthResponse() *HealthResponse {
	return &HealthResponse{
		Status:        "healthy",
		Message:       ProjectName + " is running",
		Day:           1,
		Project:       ProjectName,
		NextMilestone: "Database integration and document processing",
	}
}
