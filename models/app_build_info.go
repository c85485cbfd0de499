// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable stands in for build metadata the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the metadata injected at link time with
// -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo replaces every empty value with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Lines is the build banner printed by both binaries.
func (a AppBuildInfo) Lines() []string {
	return []string{
		"Build version: " + a.Version,
		"Build date: " + a.Date,
		"Build commit: " + a.Commit,
	}
}

// Stamped reports whether the linker set a build version.
func (a AppBuildInfo) Stamped() bool {
	return a.Version != "" && a.Version != notAvailable
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
