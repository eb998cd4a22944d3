// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the amnplus client for one process lifetime.
//
// It opens the local sqlite store, builds the vault and identity adapters,
// the session manager and the vault services, and tears them down again on
// Close.
package client
