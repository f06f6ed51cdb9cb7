package service

import "errors"

// Operation names the user action an [OperationError] belongs to.
type Operation string

const (
	OpList    Operation = "list"
	OpGet     Operation = "get"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDelete  Operation = "delete"
	OpSignIn  Operation = "signin"
	OpSignUp  Operation = "signup"
	OpSignOut Operation = "signout"
)

var (
	ErrInvalidID        = errors.New("invalid cat id")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// OperationError is a remote failure translated into the single message the
// user sees for the whole operation. It unwraps to the adapter error, so
// callers can still test for adapter.ErrUnauthorized and friends.
type OperationError struct {
	Op      Operation
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text of err: the operation message for an
// [OperationError], otherwise err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Message
	}
	return err.Error()
}
