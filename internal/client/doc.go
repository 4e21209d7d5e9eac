// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client application runtime.
//
// It restores the persisted session and hands the terminal over to the UI
// for the rest of the process lifetime.
package client
