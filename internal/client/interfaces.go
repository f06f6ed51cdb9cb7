// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
)

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run starts the interactive client at route and blocks until exit.
	Run(ctx context.Context, route string) error

	// Close releases resources held since construction.
	Close() error
}

var _ Client = (*App)(nil)
