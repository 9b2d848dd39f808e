// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

const (
	ProjectName        = "Multimodal RAG System"
	ProjectDescription = "AI Document Intelligence with Multimodal RAG"
	ProjectVersion     = "1.0.0"
)

// AppInfo describes the running application. A single value is built
// at startup and shared read-only by every handler.
type AppInfo struct {
	Title       string
	Description string
	Version     string
}

// DefaultAppInfo returns the descriptor of the status service.
func DefaultAppInfo() AppInfo {
	return AppInfo{
		Title:       ProjectName,
		Description: ProjectDescription,
		Version:     ProjectVersion,
	}
}
