package service

import (
	"context"

	"github.com/MKhiriev/kittygram-client/models"
)

// ClientCatService defines the client-side contract for browsing and editing
// the cat catalog. Remote failures of every method except ListCatalog are
// returned as [*OperationError].
type ClientCatService interface {
	// ListCatalog loads one page of the catalog. It never fails: when the
	// service is unreachable or answers with an error, the page holds the
	// placeholder records, Offline is set and pagination is hidden.
	ListCatalog(ctx context.Context, page int) models.CatalogPage

	// Get loads a single record.
	Get(ctx context.Context, id int64) (models.Cat, error)

	// Detail loads a record and the viewer's display name concurrently.
	// Only the record lookup can fail.
	Detail(ctx context.Context, id int64) (models.CatDetail, error)

	// Create sends a new record and returns it as stored by the server.
	Create(ctx context.Context, payload models.CatPayload) (models.Cat, error)

	// Update sends every editable field of payload as a partial update.
	Update(ctx context.Context, id int64, payload models.CatPayload) (models.Cat, error)

	// Delete removes a record. Confirmation is the caller's job.
	Delete(ctx context.Context, id int64) error
}

// ClientAuthService defines the client-side contract for account flows.
type ClientAuthService interface {
	// SignIn validates credentials locally, exchanges them for a token and
	// stores it in the session. Validation failures are returned as
	// validators.FieldErrors and never reach the network.
	SignIn(ctx context.Context, creds models.Credentials) error

	// SignUp validates the sign-up form and creates the account. It does not
	// sign the new user in.
	SignUp(ctx context.Context, creds models.Credentials) (models.User, error)

	// SignOut invalidates the token on the server on a best-effort basis and
	// always clears the local session.
	SignOut(ctx context.Context) error

	// Username returns the display name of the signed-in user or "".
	Username(ctx context.Context) string

	// IsAuthenticated reports whether a token is present.
	IsAuthenticated() bool
}
