package domain

import "go.trai.ch/zerr"

var (
	// ErrStepFailed is returned when an external step exits with a non-zero status.
	ErrStepFailed = zerr.New("release step failed")

	// ErrEmptyCommand is returned when a step has no command to run.
	ErrEmptyCommand = zerr.New("step has an empty command")

	// ErrNoArtifactsCopied is returned when none of the declared artifacts exist after the build.
	ErrNoArtifactsCopied = zerr.New("no artifacts were copied, ensure the build step succeeded")

	// ErrRequiredArtifactMissing is returned when an artifact marked as required is absent.
	ErrRequiredArtifactMissing = zerr.New("required artifact not found")

	// ErrUnsupportedPlatform is returned when no compression strategy exists for the host platform.
	ErrUnsupportedPlatform = zerr.New("unsupported platform for compression")

	// ErrManifestReadFailed is returned when the package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when the package manifest is not valid JSON.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrMissingVersion is returned when the package manifest has no version field.
	ErrMissingVersion = zerr.New("package manifest has no version")

	// ErrInvalidVersion is returned when the manifest version cannot be used as a single path element.
	ErrInvalidVersion = zerr.New("package version must not contain path separators or '..'")

	// ErrInvalidDistPath is returned when the dist directory is absolute or escapes the project root.
	ErrInvalidDistPath = zerr.New("dist directory must be relative to the project root")

	// ErrInvalidArchivePrefix is returned when the archive prefix would place the archive outside dist.
	ErrInvalidArchivePrefix = zerr.New("archive prefix must not contain path separators or '..'")

	// ErrInvalidPlatformLabel is returned when the platform label cannot be used as a single path element.
	ErrInvalidPlatformLabel = zerr.New("platform label must not contain path separators or '..'")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("release config not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read release config")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse release config")

	// ErrUnsupportedConfigVersion is returned when the config declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported release config version, expected \"1\"")

	// ErrInvalidPhase is returned when a step declares a phase other than build or test.
	ErrInvalidPhase = zerr.New("invalid step phase, expected 'build' or 'test'")

	// ErrNoArtifactsDeclared is returned when the config declares no artifacts.
	ErrNoArtifactsDeclared = zerr.New("no artifacts declared")

	// ErrInvalidArtifactPath is returned when an artifact path is absolute or escapes the project root.
	ErrInvalidArtifactPath = zerr.New("artifact path must be relative to the project root")

	// ErrFailedToGetRoot is returned when the project root cannot be resolved.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrDirResetFailed is returned when the artifact directory cannot be recreated.
	ErrDirResetFailed = zerr.New("failed to reset artifact directory")

	// ErrDirCreateFailed is returned when a directory cannot be created.
	ErrDirCreateFailed = zerr.New("failed to create directory")

	// ErrFileRemoveFailed is returned when a stale file cannot be removed.
	ErrFileRemoveFailed = zerr.New("failed to remove file")

	// ErrArtifactCopyFailed is returned when an existing artifact cannot be copied.
	ErrArtifactCopyFailed = zerr.New("failed to copy artifact")

	// ErrDirScanFailed is returned when the output directory cannot be listed.
	ErrDirScanFailed = zerr.New("failed to scan output directory")

	// ErrFileHashFailed is returned when hashing an artifact fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrRecordReadFailed is returned when the release record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read release record")

	// ErrRecordUnmarshalFailed is returned when the release record cannot be decoded.
	ErrRecordUnmarshalFailed = zerr.New("failed to unmarshal release record")

	// ErrRecordMarshalFailed is returned when the release record cannot be encoded.
	ErrRecordMarshalFailed = zerr.New("failed to marshal release record")

	// ErrRecordWriteFailed is returned when the release record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write release record")
)

// Fail attaches cause to sentinel. The result reads "<sentinel>: <cause>",
// matches both sentinel and cause with errors.Is, and unwraps to cause.
// A nil cause yields an error that reads and matches as sentinel alone, which
// keeps sentinel identity when metadata is attached with zerr.With.
func Fail(sentinel, cause error) error {
	return &failure{sentinel: sentinel, cause: cause}
}

type failure struct {
	sentinel error
	cause    error
}

func (f *failure) Error() string {
	if f.cause == nil {
		return f.sentinel.Error()
	}
	return f.sentinel.Error() + ": " + f.cause.Error()
}

// Message returns the sentinel text without the cause chain.
func (f *failure) Message() string {
	return f.sentinel.Error()
}

func (f *failure) Is(target error) bool {
	return target == f.sentinel
}

func (f *failure) Unwrap() error {
	return f.cause
}
