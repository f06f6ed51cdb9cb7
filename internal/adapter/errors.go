package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors. A [*ResponseError] unwraps to exactly one of the status
// sentinels; transport failures wrap ErrNetwork.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")

	ErrInvalidAddress = errors.New("invalid adapter http address")
)

// ResponseError is a non-2xx answer from the record service.
type ResponseError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Detail is the server-supplied explanation: the `detail` or `message`
	// field, or flattened field errors. Empty when the body was not parseable.
	Detail string

	kind error
}

func (e *ResponseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.kind)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.kind, e.Detail)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// StatusCode extracts the HTTP status code from err, or 0 when err does not
// carry a [*ResponseError].
func StatusCode(err error) int {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// Detail extracts the server-supplied detail from err, if any.
func Detail(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Detail
	}
	return ""
}
