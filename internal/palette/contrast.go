// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package palette

import (
	"strconv"
)

// lightThreshold is the brightness above which a background counts as light.
const lightThreshold = 180

// Brightness computes the perceptual brightness (0..255) of a #RRGGBB value as
// 0.299*R + 0.587*G + 0.114*B. Malformed input is treated as black.
func Brightness(hex string) float64 {
	r, g, b, ok := channels(hex)
	if !ok {
		return 0
	}
	return float64(r*299+g*587+b*114) / 1000
}

// NeedsDarkText reports whether text drawn on hex should be dark.
func NeedsDarkText(hex string) bool {
	return Brightness(hex) > lightThreshold
}

// Foreground returns the hex of the text colour to use on top of hex.
func Foreground(hex string) string {
	if NeedsDarkText(hex) {
		return "#000000"
	}
	return "#FFFFFF"
}

func channels(hex string) (r, g, b int, ok bool) {
	hex = NormalizeHex(hex)
	if len(hex) != 7 {
		return 0, 0, 0, false
	}

	var vals [3]int
	for i := range vals {
		v, err := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = int(v)
	}
	return vals[0], vals[1], vals[2], true
}
