package domain

import "path/filepath"

const (
	// ModelsDirName is the name of the models root directory.
	ModelsDirName = "models"

	// StateDirName is the name of the internal state directory inside the models root.
	StateDirName = ".outfit"

	// ManifestDirName is the name of the manifest directory inside the state directory.
	ManifestDirName = "manifest"

	// LockFileName is the name of the advisory lock file inside the models root.
	LockFileName = ".outfit.lock"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "outfit.yaml"

	// PartialSuffix marks in-flight downloads.
	PartialSuffix = ".part"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ModelsRootFor returns the models root for a binary at exe.
// It is the "models" folder beside the parent of the binary's directory.
func ModelsRootFor(exe string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), ModelsDirName)
}

// ManifestPath returns the manifest directory under the models root.
func ManifestPath(root string) string {
	return filepath.Join(root, StateDirName, ManifestDirName)
}

// LockPath returns the lock file path under the models root.
func LockPath(root string) string {
	return filepath.Join(root, LockFileName)
}
