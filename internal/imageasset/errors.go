// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imageasset

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image is too large")
	ErrRead            = errors.New("image read failed")
)

// AssetError is a validation or read failure scoped to the image field.
// Message is ready to be shown next to the field.
type AssetError struct {
	Message string
	Err     error
}

func (e *AssetError) Error() string {
	return e.Message
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

const (
	msgUnsupportedType = "Поддерживаются только изображения (JPEG, PNG, GIF, WebP)"
	msgTooLarge        = "Размер файла не должен превышать 5MB"
	msgRead            = "Ошибка при загрузке изображения"
)

func readError(err error) *AssetError {
	return &AssetError{Message: msgRead, Err: fmt.Errorf("%w: %w", ErrRead, err)}
}
