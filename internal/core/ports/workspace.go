package ports

// Workspace performs the filesystem operations of the fetch phase.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// ResolveRoot returns the absolute models root, creating it if absent.
	// An empty override selects the executable-relative default.
	ResolveRoot(override string) (string, error)

	// LocateRoot returns the absolute models root like ResolveRoot but never creates it.
	LocateRoot(override string) (string, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// EnsureDir creates path and its parents.
	EnsureDir(path string) error

	// Move renames src to dst, creating dst's parent directory.
	Move(src, dst string) error

	// RemoveAll deletes path and everything beneath it. A missing path is not an error.
	RemoveAll(path string) error

	// Partials lists the temporary download files left under root.
	Partials(root string) ([]string, error)
}

// Locker serialises access to a models root across processes.
type Locker interface {
	// Lock acquires an exclusive lock on root and returns the function that releases it.
	Lock(root string) (unlock func() error, err error)
}
