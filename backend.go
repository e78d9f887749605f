package procenv

import (
	"github.com/pgavlin/procenv/osstr"
	"github.com/pgavlin/procenv/pathlist"
)

// A VarPair is a single environment variable and its value.
type VarPair struct {
	Key   osstr.String
	Value osstr.String
}

// A Backend supplies the platform-specific primitives that the rest of the
// package builds on. Implementations are stateless: every method is a direct
// call into the host operating system or a static lookup.
//
// The process environment is process-wide mutable state, and some platforms
// expose it through primitives that are not thread-safe. No Backend
// implementation performs internal synchronization; callers that mutate and
// enumerate the environment from multiple goroutines must serialize those
// calls themselves.
type Backend interface {
	// CurrentDir returns the working directory. Errors from the operating
	// system are surfaced unchanged.
	CurrentDir() (string, error)

	// SetCurrentDir changes the working directory.
	SetCurrentDir(dir string) error

	// Getenv returns the value of the given variable. Absence is reported
	// via the bool, not the error; the error reports an underlying
	// operating system failure. Key validity is the caller's concern and
	// is checked before the backend is reached.
	Getenv(key osstr.String) (osstr.String, bool, error)

	// Setenv sets the given variable.
	Setenv(key, value osstr.String) error

	// Unsetenv removes the given variable.
	Unsetenv(key osstr.String) error

	// Environ captures the entire variable set. The capture is atomic per
	// variable: no entry reflects a half-applied update. It is not atomic
	// with respect to the set as a whole.
	Environ() []VarPair

	// Arguments captures the arguments the process was started with.
	Arguments() []osstr.String

	// CurrentExe returns the path of the running executable.
	CurrentExe() (string, error)

	// HomeDir returns the current user's home directory, if known.
	HomeDir() (string, bool)

	// TempDir returns the directory for temporary files.
	TempDir() string

	// PathList returns the platform's PATH-list convention.
	PathList() pathlist.Convention

	// Platform returns fixed facts about the target platform.
	Platform() Platform
}
