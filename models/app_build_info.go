// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// buildInfoUnknown replaces build metadata the linker did not inject.
const buildInfoUnknown = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags. It is
// logged at startup and its version backs /api/version when APP_VERSION is
// not configured.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], substituting "N/A" for every
// empty value.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(buildVersion),
		Date:    orUnknown(buildDate),
		Commit:  orUnknown(buildCommit),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return buildInfoUnknown
	}
	return s
}
