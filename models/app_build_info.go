// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable replaces build values the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the version stamp of the kittygram binary, set with
// -ldflags at build time and shown by `kittygram --version` and the TUI
// build info window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo stores the injected values; empty ones become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the stamp on one line, e.g. "1.2.0 (commit abc123, built 2026-10-01)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)",
		orNotAvailable(a.buildVersion), orNotAvailable(a.buildCommit), orNotAvailable(a.buildDate))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
