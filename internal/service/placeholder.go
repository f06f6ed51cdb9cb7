package service

import "github.com/MKhiriev/kittygram-client/models"

// placeholderCats is the fixed catalog shown when the record service cannot
// be reached. A fresh slice is built on every call so callers may mutate it.
func placeholderCats() []models.Cat {
	id := func(v int64) *int64 { return &v }

	return []models.Cat{
		{
			ID:        1,
			Name:      "Мурзик",
			Color:     "black",
			BirthYear: 2020,
			Age:       4,
			Achievements: []models.Achievement{
				{ID: id(1), Name: "Ловец мышей"},
				{ID: id(2), Name: "Дружелюбный"},
			},
		},
		{
			ID:        2,
			Name:      "Барсик",
			Color:     "darkorange",
			BirthYear: 2021,
			Age:       3,
			Achievements: []models.Achievement{
				{ID: id(3), Name: "Игривый"},
			},
		},
		{
			ID:           3,
			Name:         "Васька",
			Color:        "white",
			BirthYear:    2019,
			Age:          5,
			Achievements: []models.Achievement{},
		},
	}
}
