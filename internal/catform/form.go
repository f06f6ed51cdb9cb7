// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catform is the editing session of a single cat record. It composes
// submit-gated validation, the achievement list, image gating and the colour
// palette into one object that produces a validated payload and allows only
// one submission in flight.
package catform

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/kittygram-client/internal/achievements"
	"github.com/MKhiriev/kittygram-client/internal/imageasset"
	"github.com/MKhiriev/kittygram-client/internal/palette"
	"github.com/MKhiriev/kittygram-client/internal/validators"
	"github.com/MKhiriev/kittygram-client/models"
)

// ErrSubmitInProgress is returned by Submit while another submission of the
// same form has not finished.
var ErrSubmitInProgress = errors.New("submit already in progress")

// Mode tells whether the form creates a new record or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// SendFunc delivers a payload to the record service.
type SendFunc func(ctx context.Context, payload models.CatPayload) (models.Cat, error)

// Form is safe for concurrent use: Submit typically runs on a background
// goroutine while the UI keeps reading state.
type Form struct {
	mu sync.Mutex

	mode Mode
	id   int64

	values models.CatForm
	gate   *validators.Gate[models.CatForm]
	list   *achievements.Editor

	// pending is the new upload; preview is what is displayed. Editing a
	// record keeps the remote preview with no pending upload.
	pending  *models.EncodedAsset
	preview  string
	imageErr string

	submitErr string
	loading   bool
}

// NewCreateForm returns an empty form with the default palette colour
// preselected.
func NewCreateForm(v *validators.FormValidator) *Form {
	return newForm(v, ModeCreate, 0, models.CatForm{Color: palette.Default().Hex})
}

// NewEditForm returns a form prefilled from cat. The remote image becomes the
// preview and achievements keep their server or positional identities.
func NewEditForm(v *validators.FormValidator, cat models.Cat) *Form {
	f := newForm(v, ModeEdit, cat.ID, ValuesFromCat(cat))
	f.list.Load(cat.Achievements)
	f.preview = cat.ImageURL
	return f
}

func newForm(v *validators.FormValidator, mode Mode, id int64, values models.CatForm) *Form {
	if v == nil {
		v = validators.NewFormValidator()
	}
	return &Form{
		mode:   mode,
		id:     id,
		values: values,
		gate:   validators.NewGate(v.CheckCatForm),
		list:   achievements.NewEditor(),
	}
}

func (f *Form) Mode() Mode {
	return f.mode
}

// ID is the record being edited; zero in create mode.
func (f *Form) ID() int64 {
	return f.id
}

// Values returns the current raw field values.
func (f *Form) Values() models.CatForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// SetField updates one field and returns the errors to display.
// Unknown fields are ignored.
func (f *Form) SetField(field, value string) validators.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case models.FieldName:
		f.values.Name = value
	case models.FieldColor:
		f.values.Color = palette.NormalizeHex(value)
	case models.FieldBirthYear:
		f.values.BirthYear = value
	default:
		return f.gate.Errors()
	}

	return f.gate.Change(f.values)
}

// Errors returns the field errors currently on display.
func (f *Form) Errors() validators.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gate.Errors()
}

// State returns the display state of validation.
func (f *Form) State() validators.GateState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gate.State()
}

// AddAchievement appends text; blank text is ignored.
func (f *Form) AddAchievement(text string) (achievements.Identity, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list.Add(text)
}

// RemoveAchievement drops the entry with identity id.
func (f *Form) RemoveAchievement(id achievements.Identity) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list.Remove(id)
}

// RemoveAchievementAt drops the entry at index in display order.
func (f *Form) RemoveAchievementAt(index int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list.RemoveAt(index)
}

// Achievements returns a snapshot of the list in display order.
func (f *Form) Achievements() []achievements.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list.Entries()
}

// ChooseImage validates and encodes file. On success it becomes the pending
// upload and the preview; on failure the image error is set and the previous
// image state is kept. A nil file is a no-op.
func (f *Form) ChooseImage(ctx context.Context, file imageasset.File) error {
	if file == nil {
		return nil
	}

	asset, err := imageasset.Encode(ctx, file)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.imageErr = err.Error()
		return err
	}

	f.pending = asset
	f.preview = asset.DataURL
	f.imageErr = ""
	return nil
}

// ChooseImagePath is ChooseImage for a file on disk. A path that cannot be
// read is reported like any other image error.
func (f *Form) ChooseImagePath(ctx context.Context, path string) error {
	file, err := imageasset.FromPath(path)
	if err != nil {
		f.mu.Lock()
		f.imageErr = err.Error()
		f.mu.Unlock()
		return err
	}
	return f.ChooseImage(ctx, file)
}

// ClearImage drops both the preview and any pending upload.
func (f *Form) ClearImage() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = nil
	f.preview = ""
	f.imageErr = ""
}

// Preview is the data URL of a pending upload or the remote image URL.
func (f *Form) Preview() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.preview
}

// PendingImage returns the asset that will be uploaded, or nil.
func (f *Form) PendingImage() *models.EncodedAsset {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

// ImageError is the message of the last rejected image.
func (f *Form) ImageError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imageErr
}

// SubmitError is the operation-level message of the last failed submission.
func (f *Form) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Loading reports whether a submission is in flight. The submit control must
// be disabled while it is true.
func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Payload validates the form as a submit attempt would and returns the wire
// payload. Invalid input yields [validators.FieldErrors].
func (f *Form) Payload() (models.CatPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payloadLocked()
}

func (f *Form) payloadLocked() (models.CatPayload, error) {
	errs, ok := f.gate.Submit(f.values)
	if !ok {
		return models.CatPayload{}, errs
	}
	return BuildPayload(f.values, f.list.ToPayload(), f.pending)
}

// Submit validates the form and, when valid, hands the payload to send.
//
// Validation failures return [validators.FieldErrors] without calling send.
// While send runs, Loading is true and further calls fail with
// [ErrSubmitInProgress]; the flag is released however send finishes.
// A send error is kept as SubmitError and returned.
func (f *Form) Submit(ctx context.Context, send SendFunc) (models.Cat, error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return models.Cat{}, ErrSubmitInProgress
	}

	payload, err := f.payloadLocked()
	if err != nil {
		f.mu.Unlock()
		return models.Cat{}, err
	}

	f.loading = true
	f.submitErr = ""
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	cat, err := send(ctx, payload)
	if err != nil {
		f.mu.Lock()
		f.submitErr = err.Error()
		f.mu.Unlock()
		return models.Cat{}, err
	}

	return cat, nil
}
