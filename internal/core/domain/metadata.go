package domain

import "encoding/json"

// UnknownVCSValue replaces a commit or branch that version control could not report.
const UnknownVCSValue = "unknown"

// DefaultMinAndroidVersion is used when the manifest carries no androidCompat.minVersion.
const DefaultMinAndroidVersion = "1.0.0"

// BuildMetadata is the provenance and compatibility record shipped beside the bundle.
// Field order is the serialized key order.
type BuildMetadata struct {
	Version            string `json:"version"`
	Name               string `json:"name"`
	MinAndroidVersion  string `json:"minAndroidVersion"`
	CommitSha          string `json:"commitSha"`
	Branch             string `json:"branch"`
	BuildDate          string `json:"buildDate"`
	HermesEnabled      bool   `json:"hermesEnabled"`
	NewArchEnabled     bool   `json:"newArchEnabled"`
	ReactNativeVersion string `json:"reactNativeVersion"`
}

// AndroidCompat is the optional compatibility block of the project manifest.
type AndroidCompat struct {
	MinVersion string `json:"minVersion,omitempty"`
}

// Manifest is the subset of the project's package.json the toolchain reads.
// Author and License are kept verbatim since npm accepts strings and objects for both.
type Manifest struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Author        json.RawMessage   `json:"author,omitempty"`
	License       json.RawMessage   `json:"license,omitempty"`
	Dependencies  map[string]string `json:"dependencies,omitempty"`
	AndroidCompat *AndroidCompat    `json:"androidCompat,omitempty"`
}

// MinAndroidVersion returns the declared minimum host version or the default.
func (m Manifest) MinAndroidVersion() string {
	if m.AndroidCompat == nil || m.AndroidCompat.MinVersion == "" {
		return DefaultMinAndroidVersion
	}
	return m.AndroidCompat.MinVersion
}

// DependencyVersion returns the version range declared for pkg, or "" when absent.
func (m Manifest) DependencyVersion(pkg string) string {
	return m.Dependencies[pkg]
}
