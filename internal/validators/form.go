// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/kittygram-client/models"
)

const (
	// MaxNameLength is the longest accepted cat name, in characters.
	MaxNameLength = 16
	// MinBirthYear is the earliest accepted birth year.
	MinBirthYear = 1900
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6
)

const (
	msgNameRequired      = "Введите имя кота"
	msgNameTooLong       = "Имя не должно превышать 16 символов"
	msgBirthYearRequired = "Введите год рождения"
	msgBirthYearNotInt   = "Год рождения должен быть числом"
	msgBirthYearRange    = "Год должен быть между %d и %d"
	msgEmailInvalid      = "Введите корректный email"
	msgPasswordShort     = "Пароль должен быть не короче 6 символов"
	msgConfirmMismatch   = "Пароли не совпадают"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormValidator implements [Validator] for the client forms:
// [models.CatForm] and [models.Credentials].
//
// Default fields:
//   - CatForm: name, birth_year.
//   - Credentials: email, password (sign-in). Pass email, password, confirm
//     for the sign-up form.
type FormValidator struct {
	now func() time.Time
}

// NewFormValidator returns a validator that reads the current year from the
// wall clock at every call.
func NewFormValidator() *FormValidator {
	return &FormValidator{now: time.Now}
}

// NewFormValidatorWithClock is like NewFormValidator but uses now as clock.
func NewFormValidatorWithClock(now func() time.Time) *FormValidator {
	return &FormValidator{now: now}
}

// Validate implements [Validator]. It returns nil for valid input,
// [FieldErrors] for rule violations, [ErrUnsupportedType] for an unknown
// value type and [ErrUnknownField] for an unknown field name.
func (v *FormValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var (
		errs FieldErrors
		err  error
	)

	switch value := obj.(type) {
	case models.CatForm:
		errs, err = v.checkCatForm(value, fields...)
	case *models.CatForm:
		errs, err = v.checkCatForm(*value, fields...)
	case models.Credentials:
		errs, err = v.checkCredentials(value, fields...)
	case *models.Credentials:
		errs, err = v.checkCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}

	if err != nil {
		return err
	}
	if errs.Valid() {
		return nil
	}
	return errs
}

// CheckCatForm validates every rule of the cat form. It always returns a
// non-nil map.
func (v *FormValidator) CheckCatForm(values models.CatForm) FieldErrors {
	errs, _ := v.checkCatForm(values)
	return errs
}

// CheckSignIn validates the sign-in form.
func (v *FormValidator) CheckSignIn(c models.Credentials) FieldErrors {
	errs, _ := v.checkCredentials(c, models.FieldEmail, models.FieldPassword)
	return errs
}

// CheckSignUp validates the sign-up form.
func (v *FormValidator) CheckSignUp(c models.Credentials) FieldErrors {
	errs, _ := v.checkCredentials(c, models.FieldEmail, models.FieldPassword, models.FieldConfirm)
	return errs
}

func (v *FormValidator) checkCatForm(values models.CatForm, fields ...string) (FieldErrors, error) {
	if len(fields) == 0 {
		fields = []string{models.FieldName, models.FieldBirthYear}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case models.FieldName:
			if msg := checkName(values.Name); msg != "" {
				errs[f] = msg
			}
		case models.FieldBirthYear:
			if msg := checkBirthYear(values.BirthYear, v.now().Year()); msg != "" {
				errs[f] = msg
			}
		case models.FieldColor:
			// any hex is accepted here; unmapped values are sent raw
		default:
			return errs, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs, nil
}

func (v *FormValidator) checkCredentials(c models.Credentials, fields ...string) (FieldErrors, error) {
	if len(fields) == 0 {
		fields = []string{models.FieldEmail, models.FieldPassword}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case models.FieldEmail:
			if !emailRegex.MatchString(strings.TrimSpace(c.Email)) {
				errs[f] = msgEmailInvalid
			}
		case models.FieldPassword:
			if utf8.RuneCountInString(strings.TrimSpace(c.Password)) < MinPasswordLength {
				errs[f] = msgPasswordShort
			}
		case models.FieldConfirm:
			if c.Confirm != c.Password {
				errs[f] = msgConfirmMismatch
			}
		default:
			return errs, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errs, nil
}

func checkName(name string) string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return msgNameRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		return msgNameTooLong
	}
	return ""
}

func checkBirthYear(raw string, currentYear int) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return msgBirthYearRequired
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return fmt.Sprintf(msgBirthYearRange, MinBirthYear, currentYear)
		}
		return msgBirthYearNotInt
	}

	if year < MinBirthYear || year > currentYear {
		return fmt.Sprintf(msgBirthYearRange, MinBirthYear, currentYear)
	}
	return ""
}
