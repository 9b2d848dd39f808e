// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package main

import "errors"

func reexec() error {
	return errors.New("automatic reload is not supported on windows, restart the service manually")
}
