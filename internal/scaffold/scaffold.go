// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scaffold writes the setup script that lays out the portfolio
// projects. The script is data: it is written, never executed.
package scaffold

import (
	_ "embed"
	"fmt"
	"io"
	"os"
)

// DefaultPath is where the setup script is written, relative to the
// working directory. Its parent directory is expected to exist.
const DefaultPath = "project_files/setup_projects.sh"

const fileMode = 0o644

//go:embed setup_projects.sh
var setupScript []byte

// Template returns a copy of the setup script text.
func Template() []byte {
	return append([]byte(nil), setupScript...)
}

// Write creates or truncates path and writes the setup script verbatim.
// The parent directory is not created; a missing directory surfaces as
// an error satisfying errors.Is(err, fs.ErrNotExist).
func Write(path string) error {
	if err := os.WriteFile(path, setupScript, fileMode); err != nil {
		return fmt.Errorf("write setup script: %w", err)
	}
	return nil
}

// PrintConfirmation tells the user where the script went and how to run it.
func PrintConfirmation(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "✅ Created setup script: %s\n"+
		"\nTo use this script:\n"+
		"1. Copy it to your project directory\n"+
		"2. Make it executable: chmod +x setup_projects.sh\n"+
		"3. Run it: ./setup_projects.sh\n", path)
	return err
}

// Generate writes the setup script to path and prints the confirmation
// to w. Nothing is printed when the write fails.
func Generate(w io.Writer, path string) error {
	if err := Write(path); err != nil {
		return err
	}
	return PrintConfirmation(w, path)
}
