package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/kittygram-client/internal/adapter"
	"github.com/MKhiriev/kittygram-client/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respErr(code int, detail string) error {
	kinds := map[int]error{
		400: adapter.ErrBadRequest,
		401: adapter.ErrUnauthorized,
		403: adapter.ErrForbidden,
		404: adapter.ErrNotFound,
	}
	kind, ok := kinds[code]
	if !ok {
		kind = adapter.ErrServer
	}
	return &testResponseError{code: code, detail: detail, kind: kind}
}

// testResponseError unwraps to an adapter sentinel without being an
// *adapter.ResponseError, so no status code can be extracted from it.
type testResponseError struct {
	code   int
	detail string
	kind   error
}

func (e *testResponseError) Error() string { return fmt.Sprintf("http %d", e.code) }
func (e *testResponseError) Unwrap() error { return e.kind }

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(OpGet, nil))
}

func TestMapAdapterError_Messages(t *testing.T) {
	network := fmt.Errorf("get cat request: %w: %w", adapter.ErrNetwork, errors.New("connection refused"))

	tests := []struct {
		name string
		op   Operation
		err  error
		want string
	}{
		{name: "network on get", op: OpGet, err: network, want: app.MsgNetwork},
		{name: "network on create", op: OpCreate, err: network, want: app.MsgNetwork},
		{name: "401 on delete", op: OpDelete, err: adapter.NewResponseError(401, ""), want: app.MsgUnauthorized},
		{name: "401 on update", op: OpUpdate, err: adapter.NewResponseError(401, "Invalid token."), want: app.MsgUnauthorized},
		{name: "403 on delete", op: OpDelete, err: adapter.NewResponseError(403, ""), want: app.MsgForbiddenDelete},
		{name: "403 on update", op: OpUpdate, err: adapter.NewResponseError(403, ""), want: app.MsgForbidden},
		{name: "404 on get", op: OpGet, err: adapter.NewResponseError(404, ""), want: app.MsgNotFound},
		{name: "404 on delete", op: OpDelete, err: adapter.NewResponseError(404, ""), want: app.MsgNotFound},
		{name: "500 on get", op: OpGet, err: adapter.NewResponseError(500, ""), want: "Не удалось загрузить данные кота (код ошибки: 500)"},
		{name: "502 on delete", op: OpDelete, err: adapter.NewResponseError(502, ""), want: "Не удалось удалить кота (код ошибки: 502)"},
		{name: "400 on create with detail", op: OpCreate, err: adapter.NewResponseError(400, "name: This field is required."), want: "name: This field is required."},
		{name: "400 on create without detail", op: OpCreate, err: adapter.NewResponseError(400, ""), want: app.MsgCreateFailed},
		{name: "500 on update without detail", op: OpUpdate, err: adapter.NewResponseError(500, ""), want: app.MsgUpdateFailed},
		{name: "400 on sign in", op: OpSignIn, err: adapter.NewResponseError(400, "Unable to log in with provided credentials."), want: "Unable to log in with provided credentials."},
		{name: "401 on sign in", op: OpSignIn, err: adapter.NewResponseError(401, ""), want: app.MsgSignInFailed},
		{name: "400 on sign up", op: OpSignUp, err: adapter.NewResponseError(400, ""), want: app.MsgSignUpFailed},
		{name: "plain error on get", op: OpGet, err: errors.New("decode cat: bad json"), want: app.MsgLoadFailed},
		{name: "plain error on delete", op: OpDelete, err: errors.New("boom"), want: app.MsgDeleteFailed},
		{name: "list", op: OpList, err: adapter.NewResponseError(500, ""), want: app.MsgListFailed},
		{name: "sign out", op: OpSignOut, err: adapter.NewResponseError(500, ""), want: app.MsgRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapAdapterError(tt.op, tt.err)
			require.Error(t, err)

			var opErr *OperationError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, tt.op, opErr.Op)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, tt.want, Message(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMapAdapterError_UnwrapsToSentinel(t *testing.T) {
	err := mapAdapterError(OpDelete, adapter.NewResponseError(403, ""))
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Equal(t, 403, adapter.StatusCode(err))
}

func TestMapAdapterError_KindWithoutStatus(t *testing.T) {
	// errors.Is sees the sentinel even without the concrete adapter type
	err := mapAdapterError(OpGet, respErr(404, ""))
	assert.Equal(t, app.MsgNotFound, Message(err))

	err = mapAdapterError(OpGet, respErr(500, ""))
	assert.Equal(t, app.MsgLoadFailed, Message(err))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, app.MsgNotFound, Message(fmt.Errorf("wrapped: %w", &OperationError{Message: app.MsgNotFound})))
}
