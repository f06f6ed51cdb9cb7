// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Form field names. They double as keys of validation error maps.
const (
	FieldName      = "name"
	FieldColor     = "color"
	FieldBirthYear = "birth_year"
	FieldImage     = "image"
	FieldSubmit    = "submit"
	FieldEmail     = "email"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldConfirm   = "confirm"
)

// CatForm is the loosely-typed state of the cat editing form: every value is
// exactly what the user typed or picked.
type CatForm struct {
	Name string

	// Color is the hex value of the selected swatch, e.g. "#000000".
	Color string

	// BirthYear is the raw text of the year input.
	BirthYear string
}

// EncodedAsset is an image read fully into memory and encoded as a
// self-describing data URL ("data:image/png;base64,...").
type EncodedAsset struct {
	// FileName is the original file name, kept for display only.
	FileName string

	// MIMEType is the validated content type.
	MIMEType string

	// Size is the number of raw bytes read.
	Size int64

	// DataURL is the transmittable representation.
	DataURL string
}
