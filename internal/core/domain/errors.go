package domain

import "go.trai.ch/zerr"

// RebuildHint tells the operator how to produce missing build artifacts.
const RebuildHint = `run "rnbundle build" first`

var (
	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrBundlerFailed is returned when the bundler cannot be spawned or exits non-zero.
	ErrBundlerFailed = zerr.New("bundler failed")

	// ErrBytecodeCompilerFailed is returned when a present bytecode compiler exits non-zero.
	ErrBytecodeCompilerFailed = zerr.New("hermes compilation failed")

	// ErrMetadataWriteFailed is returned when metadata.json cannot be written.
	ErrMetadataWriteFailed = zerr.New("failed to write metadata")

	// ErrMetadataReadFailed is returned when metadata.json exists but cannot be decoded.
	ErrMetadataReadFailed = zerr.New("failed to read metadata")

	// ErrManifestReadFailed is returned when the project manifest cannot be read or parsed.
	ErrManifestReadFailed = zerr.New("failed to read project manifest")

	// ErrConfigReadFailed is returned when rnbundle.yaml exists but cannot be read or parsed.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrOutputDirMissing is returned by packaging when the output directory does not exist.
	ErrOutputDirMissing = zerr.New("output directory not found")

	// ErrBundleMissing is returned by packaging when the bundle has not been built.
	ErrBundleMissing = zerr.New("bundle not found")

	// ErrMetadataMissing is returned by packaging when metadata.json has not been generated.
	ErrMetadataMissing = zerr.New("metadata not found")

	// ErrPackageWriteFailed is returned when the package descriptor cannot be written.
	ErrPackageWriteFailed = zerr.New("failed to write package descriptor")

	// ErrInvalidTransition is returned when the pipeline attempts an illegal stage change.
	ErrInvalidTransition = zerr.New("invalid pipeline transition")
)
