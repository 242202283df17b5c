// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive terminal application runtime.
//
// It runs the terminal UI and the background workers in one process and
// locks the vault when the UI exits. When the vault is served by a running
// API process the workers are left to that process.
package client
