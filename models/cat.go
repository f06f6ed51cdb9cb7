// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Cat is a record of the cat catalog as returned by the record service.
// It is the read model: every field mirrors the server representation.
type Cat struct {
	// ID is the server-assigned identifier. It is zero until the record is created.
	ID int64 `json:"id"`

	// Name is the display name of the cat (1..16 characters).
	Name string `json:"name"`

	// Color is the canonical colour identifier (e.g. "black", "bisque").
	// Hex values only appear at the presentation boundary.
	Color string `json:"color"`

	// BirthYear is the year the cat was born.
	BirthYear int `json:"birth_year"`

	// Age is computed by the server from BirthYear.
	Age int `json:"age,omitempty"`

	// Achievements is the ordered list of achievements attached to the cat.
	Achievements []Achievement `json:"achievements"`

	// ImageURL is the remote URL of the cat image. After [adapter] normalisation
	// it is always absolute and directly loadable; empty when there is no image.
	ImageURL string `json:"image_url,omitempty"`
}

// Achievement is a single achievement as seen on the wire.
type Achievement struct {
	// ID is the server identifier. Some server versions omit it, in which
	// case the client derives a positional identity.
	ID *int64 `json:"id,omitempty"`

	// Name is the free-text achievement name, the only field the server persists.
	Name string `json:"achievement_name"`
}

// AchievementPayload is the outgoing shape of an achievement. It carries no
// identity at all: client identities never leave the process.
type AchievementPayload struct {
	Name string `json:"achievement_name"`
}

// CatPayload is the request body for creating a cat.
type CatPayload struct {
	Name         string               `json:"name"`
	Color        string               `json:"color"`
	BirthYear    int                  `json:"birth_year"`
	Achievements []AchievementPayload `json:"achievements"`

	// Image is the encoded asset (data URL). It is omitted entirely unless a
	// new image was chosen during this editing session.
	Image *string `json:"image,omitempty"`
}

// CatPatch is the request body for a partial update. Only non-nil fields are
// transmitted.
type CatPatch struct {
	Name         *string               `json:"name,omitempty"`
	Color        *string               `json:"color,omitempty"`
	BirthYear    *int                  `json:"birth_year,omitempty"`
	Achievements *[]AchievementPayload `json:"achievements,omitempty"`
	Image        *string               `json:"image,omitempty"`
}

// PatchFromPayload converts a full payload into a patch carrying every
// editable field.
func PatchFromPayload(p CatPayload) CatPatch {
	achievements := p.Achievements
	if achievements == nil {
		achievements = []AchievementPayload{}
	}

	return CatPatch{
		Name:         &p.Name,
		Color:        &p.Color,
		BirthYear:    &p.BirthYear,
		Achievements: &achievements,
		Image:        p.Image,
	}
}

// CatDetail is a record prepared for the detail screen together with the
// display name of whoever is looking at it.
type CatDetail struct {
	Cat Cat

	// Viewer is the username of the signed-in user, or "" for anonymous
	// visitors and when the profile lookup failed.
	Viewer string
}
