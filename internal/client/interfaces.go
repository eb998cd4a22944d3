// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "io"

// Client is the lifecycle contract of a wired client application.
type Client interface {
	io.Closer
}

var _ Client = (*App)(nil)
