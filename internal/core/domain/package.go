package domain

import (
	"bytes"
	"encoding/json"
)

const packageDescription = "React Native bundle for Android brownfield integration"

var (
	packageKeywords = []string{"react-native", "android", "brownfield", "bundle"}

	emptyAuthor    = json.RawMessage(`""`)
	defaultLicense = json.RawMessage(`"UNLICENSED"`)
)

// PackageDescriptor is the package.json of the assembled distribution directory.
// It is derived from the project manifest only, never from BuildMetadata.
type PackageDescriptor struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Main        string          `json:"main"`
	Files       []string        `json:"files"`
	Keywords    []string        `json:"keywords"`
	Author      json.RawMessage `json:"author"`
	License     json.RawMessage `json:"license"`
}

// NewPackageDescriptor derives the distribution descriptor for a platform bundle.
func NewPackageDescriptor(m Manifest, name, platform string) PackageDescriptor {
	if name == "" {
		name = DefaultPackageName
	}
	bundle := BundleFileName(platform)
	return PackageDescriptor{
		Name:        name,
		Version:     m.Version,
		Description: packageDescription,
		Main:        bundle,
		Files:       []string{bundle, MetadataFileName},
		Keywords:    append([]string(nil), packageKeywords...),
		Author:      orDefault(m.Author, emptyAuthor),
		License:     orDefault(m.License, defaultLicense),
	}
}

// orDefault copies v, or returns fallback when v is absent or a falsy JSON scalar.
func orDefault(v, fallback json.RawMessage) json.RawMessage {
	switch string(bytes.TrimSpace(v)) {
	case "", "null", `""`, "false", "0":
		return append(json.RawMessage(nil), fallback...)
	}
	return append(json.RawMessage(nil), v...)
}
