// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client-side state between runs. The only state the
// client keeps is the credential token of the signed-in user.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_repository_mock.go -package=mock

// TokenRepository stores the credential token under a single canonical key.
type TokenRepository interface {
	// Get returns the stored token or [ErrTokenNotFound].
	Get(ctx context.Context) (string, error)

	// Save replaces the stored token. Empty tokens are rejected with
	// [ErrEmptyToken]; use Delete to sign out.
	Save(ctx context.Context, token string) error

	// Delete removes the token. Deleting a missing token is not an error.
	Delete(ctx context.Context) error
}
