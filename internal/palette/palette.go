// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package palette maps the closed set of cat colours between the canonical
// identifiers accepted by the record service and their hex presentation.
//
// The list must stay in sync with the server's allowed colours; the client
// never invents identifiers.
package palette

import (
	"strings"
)

// Entry is one (identifier, hex) pair of the palette.
type Entry struct {
	Name string
	Hex  string
}

var entries = []Entry{
	{Name: "bisque", Hex: "#FFE4C4"},
	{Name: "burlywood", Hex: "#DEB887"},
	{Name: "orange", Hex: "#FFA500"},
	{Name: "darkorange", Hex: "#FF8C00"},
	{Name: "chocolate", Hex: "#D2691E"},
	{Name: "saddlebrown", Hex: "#8B4513"},
	{Name: "white", Hex: "#FFFFFF"},
	{Name: "whitesmoke", Hex: "#F5F5F5"},
	{Name: "gainsboro", Hex: "#DCDCDC"},
	{Name: "darkgrey", Hex: "#A9A9A9"},
	{Name: "gray", Hex: "#808080"},
	{Name: "black", Hex: "#000000"},
}

var (
	byName = make(map[string]string, len(entries))
	byHex  = make(map[string]string, len(entries))
)

func init() {
	for _, e := range entries {
		byName[e.Name] = e.Hex
		byHex[e.Hex] = e.Name
	}
}

// Entries returns a copy of the palette in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Default is the entry unknown identifiers degrade to.
func Default() Entry {
	return entries[0]
}

// NameToHex returns the hex value of a canonical identifier. Lookup is
// case-insensitive. Unknown identifiers yield the default entry's hex.
func NameToHex(name string) string {
	if hex, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return hex
	}
	return Default().Hex
}

// HexToName returns the canonical identifier for hex. The boolean is false
// when hex is not part of the palette; callers then fall back to sending the
// raw hex and let the server decide.
func HexToName(hex string) (string, bool) {
	name, ok := byHex[NormalizeHex(hex)]
	return name, ok
}

// IsName reports whether name is a canonical identifier.
func IsName(name string) bool {
	_, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// NormalizeHex upper-cases hex and makes sure it starts with '#'.
func NormalizeHex(hex string) string {
	hex = strings.ToUpper(strings.TrimSpace(hex))
	if hex != "" && !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return hex
}

// Resolve accepts either a canonical identifier or a hex value and returns
// the hex to preselect in a form. Unknown input degrades to the default.
func Resolve(value string) string {
	if IsName(value) {
		return NameToHex(value)
	}
	if name, ok := HexToName(value); ok {
		return byName[name]
	}
	return Default().Hex
}
