// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CatListResponse is the raw paginated listing returned by GET /cats/.
// Next and Previous are opaque continuation links: they are only tested for
// presence, never parsed.
type CatListResponse struct {
	Count    int     `json:"count"`
	Results  []Cat   `json:"results"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// HasNext reports whether the server announced a following page.
func (r CatListResponse) HasNext() bool {
	return r.Next != nil && *r.Next != ""
}

// HasPrevious reports whether the server announced a preceding page.
func (r CatListResponse) HasPrevious() bool {
	return r.Previous != nil && *r.Previous != ""
}

// PageCursor is the client-maintained pagination state of the catalog.
type PageCursor struct {
	// CurrentPage is 1-based.
	CurrentPage int
	HasNext     bool
	HasPrevious bool
}

// NewPageCursor returns a cursor positioned on page 1 with no neighbours known.
func NewPageCursor() PageCursor {
	return PageCursor{CurrentPage: 1}
}

// Next advances the cursor. It does nothing and returns false when there is
// no next page.
func (c *PageCursor) Next() bool {
	if !c.HasNext {
		return false
	}
	c.CurrentPage++
	return true
}

// Previous moves the cursor back. It does nothing and returns false when
// there is no previous page.
func (c *PageCursor) Previous() bool {
	if !c.HasPrevious || c.CurrentPage <= 1 {
		return false
	}
	c.CurrentPage--
	return true
}

// Visible reports whether pagination controls should be shown at all.
func (c PageCursor) Visible() bool {
	return c.HasNext || c.HasPrevious
}

// CatalogPage is one page of the catalog prepared for display.
type CatalogPage struct {
	Items  []Cat
	Cursor PageCursor

	// Offline is set when the service could not be reached and Items holds
	// the fixed placeholder set instead of server data.
	Offline bool

	// Notice is a non-blocking message shown above the items.
	Notice string
}
