package domain

// Invocation describes one call of an external tool.
type Invocation struct {
	// Name is the tool's display name used in logs and errors.
	Name string
	// Path is the executable; bare names are looked up on PATH.
	Path string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
}

// Argv returns the full command line.
func (i Invocation) Argv() []string {
	return append([]string{i.Path}, i.Args...)
}

// ExitStatus is the exit code of a finished tool process.
type ExitStatus int

// Success reports whether the tool exited with status zero.
func (s ExitStatus) Success() bool {
	return s == 0
}
