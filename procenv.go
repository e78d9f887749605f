// Package procenv inspects and manipulates the process's environment:
// environment variables, command-line arguments, well-known directories,
// and the PATH-list encoding used by PATH-style variables.
//
// Functions come in pairs where the data may not be valid Unicode: Var and
// VarOs, Vars and VarsOs, Args and ArgsOs. The Os variants return
// osstr.String values and never fail on decoding; the plain variants return
// Unicode strings and treat non-Unicode data as a fatal error, by design.
//
// All functions operate through a Backend, the seam that isolates the
// platform-specific primitives. The package-level functions use the backend
// for the build target; New binds any other Backend, which is how tests
// substitute a fake environment.
//
// The process environment is shared mutable state with no locking at this
// level. Callers that mutate and enumerate it concurrently must provide
// their own serialization.
package procenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pgavlin/procenv/osstr"
)

// An Env exposes the process environment through a Backend.
type Env struct {
	backend Backend
}

// New returns an Env backed by b.
func New(b Backend) *Env {
	return &Env{backend: b}
}

var host = New(hostBackend{})

// Host returns the Env for the build target's own environment.
func Host() *Env {
	return host
}

// validKey reports whether key can name an environment variable: keys must
// be non-empty and cannot contain '=' or NUL.
func validKey(key osstr.String) bool {
	return key != "" && !strings.ContainsAny(string(key), "=\x00")
}

func mustValidKey(key osstr.String) {
	if !validKey(key) {
		panic(fmt.Errorf("invalid environment variable name %q", key.Lossy()))
	}
}

func mustValidValue(value osstr.String) {
	if strings.IndexByte(string(value), 0) >= 0 {
		panic(fmt.Errorf("invalid environment variable value %q", value.Lossy()))
	}
}

// CurrentDir returns the working directory.
func (e *Env) CurrentDir() (string, error) {
	return e.backend.CurrentDir()
}

// SetCurrentDir changes the working directory.
func (e *Env) SetCurrentDir(dir string) error {
	return e.backend.SetCurrentDir(dir)
}

// Var fetches the given variable as a Unicode string. It returns
// ErrNotPresent if the variable is not set and a *NotUnicodeError carrying
// the raw value if the value is not valid Unicode.
func (e *Env) Var(key osstr.String) (string, error) {
	value, ok := e.VarOs(key)
	if !ok {
		return "", ErrNotPresent
	}
	s, err := value.Unicode()
	if err != nil {
		return "", &NotUnicodeError{Raw: value}
	}
	return s, nil
}

// VarOs fetches the given variable, reporting whether it is set. A key that
// cannot name a variable (empty, or containing '=' or NUL) is reported as
// not set without consulting the backend.
func (e *Env) VarOs(key osstr.String) (osstr.String, bool) {
	if !validKey(key) {
		return "", false
	}
	value, ok, err := e.backend.Getenv(key)
	if err != nil {
		panic(fmt.Errorf("getting environment variable %q: %w", key.Lossy(), err))
	}
	return value, ok
}

// SetVar sets the given variable. It panics if key is empty or contains
// '=' or NUL, if value contains NUL, or if the backend fails: these are
// programming errors, not environmental conditions.
func (e *Env) SetVar(key, value osstr.String) {
	mustValidKey(key)
	mustValidValue(value)
	if err := e.backend.Setenv(key, value); err != nil {
		panic(fmt.Errorf("setting environment variable %q: %w", key.Lossy(), err))
	}
}

// RemoveVar removes the given variable. The key contract matches SetVar.
func (e *Env) RemoveVar(key osstr.String) {
	mustValidKey(key)
	if err := e.backend.Unsetenv(key); err != nil {
		panic(fmt.Errorf("removing environment variable %q: %w", key.Lossy(), err))
	}
}

// Vars returns an iterator over a snapshot of the environment variables,
// decoded as Unicode. Iteration panics on a variable that is not valid
// Unicode; use VarsOs when values may hold arbitrary bytes. Later changes
// to the environment are not reflected in the snapshot.
func (e *Env) Vars() *VarsIter {
	return &VarsIter{inner: *e.VarsOs()}
}

// VarsOs returns an iterator over a snapshot of the environment variables.
// Later changes to the environment are not reflected in the snapshot.
func (e *Env) VarsOs() *VarsOsIter {
	return &VarsOsIter{pairs: e.backend.Environ()}
}

// Map returns the environment as a map from variable name to value. Names
// and values that are not valid Unicode are decoded lossily.
func (e *Env) Map() map[string]string {
	pairs := e.backend.Environ()
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p.Key.Lossy()] = p.Value.Lossy()
	}
	return m
}

// Args returns an iterator over the arguments the process was started with,
// decoded as Unicode. Iteration panics on an argument that is not valid
// Unicode; use ArgsOs when arguments may hold arbitrary bytes.
func (e *Env) Args() *ArgsIter {
	return &ArgsIter{inner: *e.ArgsOs()}
}

// ArgsOs returns an iterator over the arguments the process was started
// with. The first element is traditionally the executable path, but it can
// be set to arbitrary text and should not be trusted for security purposes.
func (e *Env) ArgsOs() *ArgsOsIter {
	args := e.backend.Arguments()
	return &ArgsOsIter{args: args, tail: len(args)}
}

// CurrentExe returns the path of the running executable. Whether symbolic
// links are resolved is platform-specific.
func (e *Env) CurrentExe() (string, error) {
	return e.backend.CurrentExe()
}

// HomeDir returns the current user's home directory, if known. The
// HOME-style variable is consulted first, then the platform's user
// database or profile API.
func (e *Env) HomeDir() (string, bool) {
	return e.backend.HomeDir()
}

// TempDir returns the directory for temporary files, following the
// platform's resolution order (TMPDIR on POSIX systems, the Windows
// temporary-path API on Windows).
func (e *Env) TempDir() string {
	return e.backend.TempDir()
}

// SplitPaths parses a PATH-style variable value into its path entries
// under this environment's convention. Each call re-parses from the start.
func (e *Env) SplitPaths(list osstr.String) []osstr.String {
	return e.backend.PathList().Split(list)
}

// JoinPaths encodes paths as a single PATH-style value under this
// environment's convention. It fails with a *pathlist.JoinError on the
// first path that the convention cannot represent.
func (e *Env) JoinPaths(paths []osstr.String) (osstr.String, error) {
	return e.backend.PathList().Join(paths)
}

// Platform returns fixed facts about this environment's target platform.
func (e *Env) Platform() Platform {
	return e.backend.Platform()
}

// LookPath searches for an executable named name in the directories listed
// by the PATH variable. If name contains a path separator it is tried
// directly and PATH is not consulted. An empty PATH entry means the current
// directory. On platforms with an executable suffix, name is also tried
// with the suffix appended.
func (e *Env) LookPath(name string) (string, bool) {
	if strings.ContainsRune(name, filepath.Separator) {
		if e.isExecutable(name) {
			return name, true
		}
		return "", false
	}

	pathVar, ok := e.VarOs("PATH")
	if !ok {
		return "", false
	}
	suffix := e.backend.Platform().EXESuffix
	for _, entry := range e.SplitPaths(pathVar) {
		dir := string(entry)
		if dir == "" {
			// An empty PATH entry means the current directory.
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		if e.isExecutable(candidate) {
			return candidate, true
		}
		if suffix != "" && !strings.HasSuffix(name, suffix) && e.isExecutable(candidate+suffix) {
			return candidate + suffix, true
		}
	}
	return "", false
}

func (e *Env) isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if e.backend.Platform().Family == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// CurrentDir returns the working directory.
func CurrentDir() (string, error) { return host.CurrentDir() }

// SetCurrentDir changes the working directory.
func SetCurrentDir(dir string) error { return host.SetCurrentDir(dir) }

// Var fetches the given variable from the host environment. See Env.Var.
func Var(key osstr.String) (string, error) { return host.Var(key) }

// VarOs fetches the given variable from the host environment. See
// Env.VarOs.
func VarOs(key osstr.String) (osstr.String, bool) { return host.VarOs(key) }

// SetVar sets the given variable in the host environment. See Env.SetVar.
func SetVar(key, value osstr.String) { host.SetVar(key, value) }

// RemoveVar removes the given variable from the host environment. See
// Env.RemoveVar.
func RemoveVar(key osstr.String) { host.RemoveVar(key) }

// Vars returns an iterator over a snapshot of the host environment. See
// Env.Vars.
func Vars() *VarsIter { return host.Vars() }

// VarsOs returns an iterator over a snapshot of the host environment. See
// Env.VarsOs.
func VarsOs() *VarsOsIter { return host.VarsOs() }

// Map returns the host environment as a map. See Env.Map.
func Map() map[string]string { return host.Map() }

// Args returns an iterator over the process's arguments. See Env.Args.
func Args() *ArgsIter { return host.Args() }

// ArgsOs returns an iterator over the process's arguments. See Env.ArgsOs.
func ArgsOs() *ArgsOsIter { return host.ArgsOs() }

// CurrentExe returns the path of the running executable.
func CurrentExe() (string, error) { return host.CurrentExe() }

// HomeDir returns the current user's home directory, if known.
func HomeDir() (string, bool) { return host.HomeDir() }

// TempDir returns the directory for temporary files.
func TempDir() string { return host.TempDir() }

// SplitPaths parses a PATH-style value under the host convention.
func SplitPaths(list osstr.String) []osstr.String { return host.SplitPaths(list) }

// JoinPaths encodes paths as a PATH-style value under the host convention.
func JoinPaths(paths []osstr.String) (osstr.String, error) { return host.JoinPaths(paths) }

// LookPath searches the PATH variable for an executable. See Env.LookPath.
func LookPath(name string) (string, bool) { return host.LookPath(name) }
