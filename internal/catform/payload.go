package catform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/kittygram-client/internal/palette"
	"github.com/MKhiriev/kittygram-client/models"
)

// BuildPayload converts validated form state into the wire payload.
//
//   - name is trimmed
//   - color is the palette identifier of the selected hex, or the raw hex when
//     the hex is not in the palette
//   - birth_year is parsed as an integer
//   - achievements carry only their names and are never nil
//   - image is set only when a new asset was encoded in this session
//
// The only possible error is an unparseable birth year, which validation
// rules out before submission.
func BuildPayload(values models.CatForm, achievements []models.AchievementPayload, image *models.EncodedAsset) (models.CatPayload, error) {
	year, err := strconv.Atoi(strings.TrimSpace(values.BirthYear))
	if err != nil {
		return models.CatPayload{}, fmt.Errorf("parse birth year: %w", err)
	}

	color, ok := palette.HexToName(values.Color)
	if !ok {
		color = strings.TrimSpace(values.Color)
	}

	if achievements == nil {
		achievements = []models.AchievementPayload{}
	}

	payload := models.CatPayload{
		Name:         strings.TrimSpace(values.Name),
		Color:        color,
		BirthYear:    year,
		Achievements: achievements,
	}
	if image != nil {
		dataURL := image.DataURL
		payload.Image = &dataURL
	}

	return payload, nil
}

// ValuesFromCat projects a fetched record into editable form state. The
// server colour identifier becomes the hex shown by the picker.
func ValuesFromCat(cat models.Cat) models.CatForm {
	return models.CatForm{
		Name:      cat.Name,
		Color:     palette.Resolve(cat.Color),
		BirthYear: strconv.Itoa(cat.BirthYear),
	}
}
