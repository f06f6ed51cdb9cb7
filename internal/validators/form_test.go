// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/kittygram-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC) }
}

func validCatForm() models.CatForm {
	return models.CatForm{Name: "Мурзик", Color: "#000000", BirthYear: "2020"}
}

func TestCheckCatForm_Valid(t *testing.T) {
	v := NewFormValidatorWithClock(fixedClock(2026))

	errs := v.CheckCatForm(validCatForm())
	require.NotNil(t, errs)
	assert.True(t, errs.Valid())
}

func TestCheckCatForm_Name(t *testing.T) {
	v := NewFormValidatorWithClock(fixedClock(2026))

	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{name: "empty", value: "", wantMsg: "Введите имя кота"},
		{name: "blank", value: "    ", wantMsg: "Введите имя кота"},
		{name: "exactly 16 cyrillic", value: strings.Repeat("Ж", 16)},
		{name: "16 after trim", value: "  " + strings.Repeat("a", 16) + "  "},
		{name: "17 characters", value: strings.Repeat("Ж", 17), wantMsg: "Имя не должно превышать 16 символов"},
		{name: "single", value: "Ы"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validCatForm()
			form.Name = tt.value

			errs := v.CheckCatForm(form)
			if tt.wantMsg == "" {
				assert.False(t, errs.Has(models.FieldName), errs)
				return
			}
			assert.Equal(t, tt.wantMsg, errs[models.FieldName])
		})
	}
}

func TestCheckCatForm_BirthYearRange(t *testing.T) {
	v := NewFormValidatorWithClock(fixedClock(2026))

	for year := 1850; year <= 2050; year++ {
		form := validCatForm()
		form.BirthYear = strconv.Itoa(year)

		errs := v.CheckCatForm(form)
		inside := year >= 1900 && year <= 2026
		assert.Equal(t, !inside, errs.Has(models.FieldBirthYear), "year %d", year)
		if !inside {
			assert.Equal(t, "Год должен быть между 1900 и 2026", errs[models.FieldBirthYear])
		}
	}
}

func TestCheckCatForm_BirthYearUsesCurrentClock(t *testing.T) {
	year := 2030
	v := NewFormValidatorWithClock(func() time.Time { return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC) })

	form := validCatForm()
	form.BirthYear = "2030"
	assert.True(t, v.CheckCatForm(form).Valid())

	year = 2029
	assert.True(t, v.CheckCatForm(form).Has(models.FieldBirthYear))
}

func TestCheckCatForm_BirthYearMalformed(t *testing.T) {
	v := NewFormValidatorWithClock(fixedClock(2026))

	tests := []struct {
		raw     string
		wantMsg string
	}{
		{raw: "", wantMsg: "Введите год рождения"},
		{raw: "  ", wantMsg: "Введите год рождения"},
		{raw: "20x0", wantMsg: "Год рождения должен быть числом"},
		{raw: "2020.5", wantMsg: "Год рождения должен быть числом"},
		{raw: "0", wantMsg: "Год должен быть между 1900 и 2026"},
		{raw: "99999999999999999999999", wantMsg: "Год должен быть между 1900 и 2026"},
		{raw: " 2020 "},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			form := validCatForm()
			form.BirthYear = tt.raw
			errs := v.CheckCatForm(form)
			assert.Equal(t, tt.wantMsg, errs[models.FieldBirthYear])
		})
	}
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewFormValidatorWithClock(fixedClock(2026))
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, validCatForm()))
	form := validCatForm()
	assert.NoError(t, v.Validate(ctx, &form))

	err := v.Validate(ctx, models.CatForm{})
	require.Error(t, err)
	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Len(t, fe, 2)

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, validCatForm(), "whiskers"), ErrUnknownField)
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewFormValidatorWithClock(fixedClock(2026))

	form := models.CatForm{Name: "", BirthYear: "2020"}
	assert.NoError(t, v.Validate(context.Background(), form, models.FieldBirthYear))
	assert.Error(t, v.Validate(context.Background(), form, models.FieldName))
}

func TestCredentials(t *testing.T) {
	v := NewFormValidator()

	ok := models.Credentials{Email: "cat@example.com", Password: "secret1", Confirm: "secret1"}
	assert.True(t, v.CheckSignIn(ok).Valid())
	assert.True(t, v.CheckSignUp(ok).Valid())

	bad := models.Credentials{Email: "cat@example", Password: " 12345 ", Confirm: "other"}
	errs := v.CheckSignUp(bad)
	assert.Equal(t, "Введите корректный email", errs[models.FieldEmail])
	assert.Equal(t, "Пароль должен быть не короче 6 символов", errs[models.FieldPassword])
	assert.Equal(t, "Пароли не совпадают", errs[models.FieldConfirm])

	// sign-in ignores the confirmation
	assert.False(t, v.CheckSignIn(bad).Has(models.FieldConfirm))
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{"name": "b", "birth_year": "a"}
	assert.Equal(t, "birth_year: a; name: b", fe.Error())
}
