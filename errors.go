package pygmentize

import "fmt"

// SpawnError is returned when the pygmentize process could not be
// started for a reason other than the executable being missing.
type SpawnError struct {
	// Err is the underlying error reported by the operating system.
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting pygmentize: %v", e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// NotFoundError is returned when the pygmentize executable was not
// found or not installed.
//
// Install Pygments (https://pygments.org/download/) or point
// [SetExecutable] or [Tool.Path] at the executable to resolve this.
type NotFoundError struct {
	// Path is the executable path or name that could not be resolved.
	Path string

	// Err is the underlying error reported by the operating system.
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v was not found or not installed; "+
		"install Pygments or set a custom path with SetExecutable", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// IOError is returned when feeding input to a running pygmentize
// process or reading its output fails.
type IOError struct {
	// Err is the underlying error.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("running pygmentize: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ExitError is returned when pygmentize ran but exited with a non-zero
// status, reporting whatever the process printed to standard error.
type ExitError struct {
	// ExitCode is the exit code of the process.
	// It is -1 if the process was terminated by a signal.
	ExitCode int

	// Stderr is the standard error output of the process,
	// decoded lossily if it was not valid UTF-8.
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("pygmentize exited with status %d", e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// InvalidUTF8Error is returned when pygmentize exited successfully but
// its output is not valid UTF-8.
type InvalidUTF8Error struct {
	// Output is the raw, undecoded output of the process.
	Output []byte
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("pygmentize produced invalid UTF-8 (%d bytes)", len(e.Output))
}
