package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingBuildArtifacts is returned when the preprocessed stylesheet or font build files are absent.
	ErrMissingBuildArtifacts = zerr.New("build/ is missing one or more files\nPlease run the preprocess step first")

	// ErrConstantsReadFailed is returned when the constants table cannot be read.
	ErrConstantsReadFailed = zerr.New("failed to read constants table")

	// ErrConstantsParseFailed is returned when the constants table cannot be parsed.
	ErrConstantsParseFailed = zerr.New("failed to parse constants table")

	// ErrConstantsInvalid is returned when the constants table is missing a path or names an invalid partial bundle.
	ErrConstantsInvalid = zerr.New("invalid constants table")

	// ErrBundleFailed is returned when the bundler reports errors for an entry point.
	ErrBundleFailed = zerr.New("bundling failed")

	// ErrEmptyBundle is returned when the bundler produced no output file.
	ErrEmptyBundle = zerr.New("bundler produced no output")

	// ErrTransformFailed is returned when a source transform fails on a module.
	ErrTransformFailed = zerr.New("source transform failed")

	// ErrMinifyFailed is returned when the minifier rejects a bundle.
	ErrMinifyFailed = zerr.New("minification failed")

	// ErrArtifactWriteFailed is returned when an output file cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrArtifactRemoveFailed is returned when an output file cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove artifact")

	// ErrPathStatFailed is returned when stating a path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrJobFailed is returned when a single bundle job fails.
	ErrJobFailed = zerr.New("bundle job failed")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
