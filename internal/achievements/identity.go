// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package achievements

import "strconv"

// Kind tells where an Identity came from.
type Kind uint8

const (
	// Transient identities are generated locally before the first save.
	Transient Kind = iota + 1
	// Persisted identities are server-provided ids.
	Persisted
	// Positional identities stand in for server entries that came without an
	// id; the value is the entry's index at load time.
	Positional
)

// Identity is the client-side key of an achievement entry. It is only used
// for list editing and display and is never transmitted.
type Identity struct {
	kind  Kind
	value int64
}

// TransientID returns a transient identity for counter value n.
func TransientID(n int64) Identity { return Identity{kind: Transient, value: n} }

// PersistedID returns the identity of a server entry with id.
func PersistedID(id int64) Identity { return Identity{kind: Persisted, value: id} }

// PositionalID returns the fallback identity of the entry at index.
func PositionalID(index int) Identity { return Identity{kind: Positional, value: int64(index)} }

// Kind returns the identity kind.
func (id Identity) Kind() Kind { return id.kind }

// IsZero reports whether id was never assigned.
func (id Identity) IsZero() bool { return id.kind == 0 }

// String renders the identity as a display key: "tmp-N" for transient,
// the bare id for persisted and "server-N" for positional identities.
func (id Identity) String() string {
	switch id.kind {
	case Transient:
		return "tmp-" + strconv.FormatInt(id.value, 10)
	case Persisted:
		return strconv.FormatInt(id.value, 10)
	case Positional:
		return "server-" + strconv.FormatInt(id.value, 10)
	default:
		return ""
	}
}
