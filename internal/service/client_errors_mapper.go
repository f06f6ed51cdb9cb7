// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kittygram-client/internal/adapter"
	"github.com/MKhiriev/kittygram-client/internal/app"
)

// mapAdapterError translates an adapter error into the operation-level
// message shown to the user.
func mapAdapterError(op Operation, err error) error {
	if err == nil {
		return nil
	}

	return &OperationError{Op: op, Message: messageFor(op, err), Err: err}
}

func messageFor(op Operation, err error) string {
	switch {
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNetwork
	case errors.Is(err, adapter.ErrUnauthorized) && op != OpSignIn:
		return app.MsgUnauthorized
	case errors.Is(err, adapter.ErrForbidden):
		if op == OpDelete {
			return app.MsgForbiddenDelete
		}
		return app.MsgForbidden
	case errors.Is(err, adapter.ErrNotFound) && isRecordOp(op):
		return app.MsgNotFound
	}

	code := adapter.StatusCode(err)
	detail := adapter.Detail(err)

	switch op {
	case OpGet:
		if code != 0 {
			return fmt.Sprintf(app.MsgLoadFailedFmt, code)
		}
		return app.MsgLoadFailed
	case OpDelete:
		if code != 0 {
			return fmt.Sprintf(app.MsgDeleteFailedFmt, code)
		}
		return app.MsgDeleteFailed
	case OpCreate:
		return detailOr(detail, app.MsgCreateFailed)
	case OpUpdate:
		return detailOr(detail, app.MsgUpdateFailed)
	case OpSignIn:
		return detailOr(detail, app.MsgSignInFailed)
	case OpSignUp:
		return detailOr(detail, app.MsgSignUpFailed)
	case OpList:
		return app.MsgListFailed
	default:
		return app.MsgRequestFailed
	}
}

func isRecordOp(op Operation) bool {
	switch op {
	case OpGet, OpCreate, OpUpdate, OpDelete:
		return true
	}
	return false
}

func detailOr(detail, fallback string) string {
	if detail != "" {
		return detail
	}
	return fallback
}
