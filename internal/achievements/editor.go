// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package achievements maintains the ordered achievement list of a cat being
// edited. Entries carry a client identity that distinguishes entries typed in
// this session from entries loaded from the server.
package achievements

import (
	"strings"

	"github.com/MKhiriev/kittygram-client/models"
)

// Entry is one achievement in the editor.
type Entry struct {
	ID   Identity
	Name string
}

// Editor is the achievement list of a single editing session. It is not safe
// for concurrent use; a form owns exactly one editor.
type Editor struct {
	entries []Entry

	// next is the last transient counter value handed out. A counter rather
	// than the wall clock keeps identities unique for rapid successive adds.
	next int64
}

// NewEditor returns an empty editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Load replaces the list with achievements fetched from the server. Entries
// with a server id keep it; the others get a positional identity computed
// from their index here, once.
func (e *Editor) Load(items []models.Achievement) {
	e.entries = make([]Entry, 0, len(items))
	for i, a := range items {
		id := PositionalID(i)
		if a.ID != nil {
			id = PersistedID(*a.ID)
		}
		e.entries = append(e.entries, Entry{ID: id, Name: a.Name})
	}
}

// Add appends text as a new entry and returns its identity. Text that trims
// to empty is ignored and the returned bool is false.
func (e *Editor) Add(text string) (Identity, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Identity{}, false
	}

	e.next++
	id := TransientID(e.next)
	e.entries = append(e.entries, Entry{ID: id, Name: text})
	return id, true
}

// Remove drops every entry with the given identity and reports whether
// anything was removed.
func (e *Editor) Remove(id Identity) bool {
	kept := e.entries[:0]
	for _, entry := range e.entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}

	removed := len(kept) != len(e.entries)
	clear(e.entries[len(kept):])
	e.entries = kept
	return removed
}

// RemoveAt drops the entry at index. Out-of-range indexes are ignored.
func (e *Editor) RemoveAt(index int) bool {
	if index < 0 || index >= len(e.entries) {
		return false
	}
	return e.Remove(e.entries[index].ID)
}

// Entries returns a copy of the current list in insertion order.
func (e *Editor) Entries() []Entry {
	out := make([]Entry, len(e.entries))
	copy(out, e.entries)
	return out
}

// Len returns the number of entries.
func (e *Editor) Len() int {
	return len(e.entries)
}

// ToPayload projects the list onto the wire shape, dropping every identity.
// The result is never nil so it always serialises as a JSON array.
func (e *Editor) ToPayload() []models.AchievementPayload {
	out := make([]models.AchievementPayload, 0, len(e.entries))
	for _, entry := range e.entries {
		out = append(out, models.AchievementPayload{Name: entry.Name})
	}
	return out
}
