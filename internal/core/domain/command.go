package domain

// Command is an external process invocation.
type Command struct {
	// Name is the executable, looked up in PATH when not absolute.
	Name string
	Args []string
	// Env holds extra "KEY=VALUE" entries appended to the process environment.
	Env []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}
