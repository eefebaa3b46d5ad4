// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata injected by linker
// flags, plus the configured service version.
type AppBuildInfo struct {
	version      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. version is the configured
// service version; the build values come from -ldflags and may be "N/A".
func NewAppBuildInfo(version, buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		version:      version,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// Version returns the configured service version.
func (a AppBuildInfo) Version() string {
	return a.version
}

// VersionInfo is the payload of GET /api/version.
type VersionInfo struct {
	Version      string `json:"version"`
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// Info returns the public projection of the build metadata.
func (a AppBuildInfo) Info() VersionInfo {
	return VersionInfo{
		Version:      a.version,
		BuildVersion: a.buildVersion,
		BuildDate:    a.buildDate,
		BuildCommit:  a.buildCommit,
	}
}
