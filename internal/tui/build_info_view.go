// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/kittygram-client/models"
)

// renderBuildInfoWindow is the "v" window of the catalog.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Программа", "Kittygram, терминальный клиент"},
		{"Версия", info.BuildVersion()},
		{"Коммит", info.BuildCommit()},
		{"Собрано", info.BuildDate()},
	}

	var b strings.Builder
	for _, row := range rows {
		value := strings.TrimSpace(row[1])
		if value == "" {
			value = "N/A"
		}
		fmt.Fprintf(&b, "%s %s\n", padRight(row[0]+":", 12), value)
	}

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), hints(as(keys.esc, "закрыть"), as(keys.version, "закрыть")))
}
