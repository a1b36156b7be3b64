package domain

import "go.trai.ch/zerr"

var (
	// ErrPythonInstallFailed is returned when the batch install of Python packages fails.
	ErrPythonInstallFailed = zerr.New("failed to install python dependencies")

	// ErrSystemInstallFailed is returned when the OS package step fails.
	ErrSystemInstallFailed = zerr.New("failed to install system dependencies")

	// ErrUninstallFailed is returned when removing conflicting packages fails.
	ErrUninstallFailed = zerr.New("failed to uninstall conflicting packages")

	// ErrCommandFailed is returned when an external command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")

	// ErrModelsRootFailed is returned when the models root cannot be resolved or created.
	ErrModelsRootFailed = zerr.New("failed to prepare models directory")

	// ErrExecutableNotFound is returned when the running binary's path cannot be determined.
	ErrExecutableNotFound = zerr.New("failed to locate executable")

	// ErrLockFailed is returned when the models root lock cannot be acquired.
	ErrLockFailed = zerr.New("failed to lock models directory")

	// ErrHubRequestFailed is returned when a model hub request fails.
	ErrHubRequestFailed = zerr.New("model hub request failed")

	// ErrHubNotFound is returned when the hub reports the repository or file as missing.
	ErrHubNotFound = zerr.New("repository or file not found on model hub")

	// ErrHubUnauthorized is returned when the hub rejects the request credentials.
	ErrHubUnauthorized = zerr.New("model hub rejected credentials")

	// ErrHubParseFailed is returned when a hub API response cannot be decoded.
	ErrHubParseFailed = zerr.New("failed to parse model hub response")

	// ErrIncompleteDownload is returned when fewer bytes arrive than the server announced.
	ErrIncompleteDownload = zerr.New("incomplete download")

	// ErrChecksumMismatch is returned when a downloaded file does not match its advertised sha256.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrUnsafePath is returned when a remote file path would escape its local directory.
	ErrUnsafePath = zerr.New("remote path escapes local directory")

	// ErrDirectFetchFailed is returned when the direct URL download fails.
	ErrDirectFetchFailed = zerr.New("direct download failed")

	// ErrEmptyDownload is returned when a download produced an empty file.
	ErrEmptyDownload = zerr.New("download produced an empty file")

	// ErrRelocateFailed is returned when a downloaded file cannot be moved into place.
	ErrRelocateFailed = zerr.New("failed to move downloaded file into place")

	// ErrArtifactMissing is returned when an artifact is still absent after its fetch completed.
	ErrArtifactMissing = zerr.New("artifact missing after download")

	// ErrUnknownStrategy is returned when an artifact descriptor carries an unsupported fetch strategy.
	ErrUnknownStrategy = zerr.New("unknown fetch strategy")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTimeout is returned when hub.timeout is not a valid duration.
	ErrInvalidTimeout = zerr.New("invalid hub timeout, expected a duration such as 30m")

	// ErrStoreCreateFailed is returned when the manifest directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create manifest directory")

	// ErrStoreReadFailed is returned when a manifest record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read manifest record")

	// ErrStoreUnmarshalFailed is returned when a manifest record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal manifest record")

	// ErrStoreMarshalFailed is returned when a manifest record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal manifest record")

	// ErrStoreWriteFailed is returned when a manifest record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write manifest record")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrCleanFailed is returned when removing download scaffolding fails.
	ErrCleanFailed = zerr.New("failed to clean models directory")
)
