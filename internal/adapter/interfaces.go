// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the kittygram
// record service.
//
// The primary abstraction is [CatalogAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPCatalogAdapter]).
//
// Non-2xx responses are returned as [*ResponseError], which unwraps to one of
// the sentinel values in errors.go so callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrNotFound] for 404). Requests that never got
// a response wrap [ErrNetwork].
package adapter

import (
	"context"

	"github.com/MKhiriev/kittygram-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// TokenSource supplies the credential attached to outgoing requests.
// An empty token means the request is sent anonymously.
type TokenSource interface {
	Token() string
}

// CatalogAdapter defines communication with the record service.
// Implementations are responsible for serialisation, the Authorization
// header, image URL normalisation and mapping transport failures to the
// sentinel values defined in this package.
type CatalogAdapter interface {
	// List fetches one page of the catalog (GET /cats/?page=N). Pages are
	// 1-based; values below 1 are treated as 1.
	List(ctx context.Context, page int) (models.CatListResponse, error)

	// Get fetches a single record (GET /cats/{id}/). The returned ImageURL is
	// absolute.
	Get(ctx context.Context, id int64) (models.Cat, error)

	// Create posts a new record (POST /cats/) and returns the stored version.
	Create(ctx context.Context, payload models.CatPayload) (models.Cat, error)

	// Update patches an existing record (PATCH /cats/{id}/). Only non-nil
	// fields of patch are sent.
	Update(ctx context.Context, id int64, patch models.CatPatch) (models.Cat, error)

	// Delete removes a record (DELETE /cats/{id}/).
	Delete(ctx context.Context, id int64) error

	// Me returns the profile of the token owner (GET /users/me/).
	Me(ctx context.Context) (models.User, error)

	// Login exchanges email and password for a credential token
	// (POST /token/login/). The adapter does not store the token.
	Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error)

	// Logout invalidates the current token on the server (POST /token/logout/).
	Logout(ctx context.Context) error

	// Register creates an account (POST /users/).
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
}
