// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imageasset gates user-selected images by type and size and encodes
// them into data URLs suitable for embedding in a JSON payload.
//
// No transcoding happens here: the bytes are transmitted as they are.
package imageasset

import (
	"context"
	"encoding/base64"
	"io"
	"strings"

	"github.com/MKhiriev/kittygram-client/models"
)

// MaxSize is the largest accepted image, in bytes.
const MaxSize = 5 * 1024 * 1024

var allowedTypes = map[string]string{
	"image/jpeg": "image/jpeg",
	"image/jpg":  "image/jpeg",
	"image/png":  "image/png",
	"image/gif":  "image/gif",
	"image/webp": "image/webp",
}

// Validate checks the declared type and size of f. A nil file is valid:
// choosing no image is always allowed.
func Validate(f File) error {
	if f == nil {
		return nil
	}

	if _, ok := allowedTypes[strings.ToLower(f.ContentType())]; !ok {
		return &AssetError{Message: msgUnsupportedType, Err: ErrUnsupportedType}
	}

	if f.Size() > MaxSize {
		return &AssetError{Message: msgTooLarge, Err: ErrTooLarge}
	}

	return nil
}

// Encode validates f, reads it fully and returns it as a data URL. It returns
// (nil, nil) when f is nil.
//
// The read is bounded by MaxSize regardless of what f declares.
func Encode(ctx context.Context, f File) (*models.EncodedAsset, error) {
	if f == nil {
		return nil, nil
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, readError(err)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, readError(err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxSize+1))
	if err != nil {
		return nil, readError(err)
	}
	if int64(len(data)) > MaxSize {
		return nil, &AssetError{Message: msgTooLarge, Err: ErrTooLarge}
	}

	mimeType := allowedTypes[strings.ToLower(f.ContentType())]

	return &models.EncodedAsset{
		FileName: f.Name(),
		MIMEType: mimeType,
		Size:     int64(len(data)),
		DataURL:  DataURL(mimeType, data),
	}, nil
}

// DataURL builds "data:<mime>;base64,<payload>".
func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
