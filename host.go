package procenv

import (
	"os"
	"strings"

	"github.com/pgavlin/procenv/osstr"
)

// hostBackend is the Backend for the build target. Home and temporary
// directory resolution and the PATH-list convention live in the per-platform
// files; everything here behaves identically across platforms.
type hostBackend struct{}

func (hostBackend) CurrentDir() (string, error) {
	return os.Getwd()
}

func (hostBackend) SetCurrentDir(dir string) error {
	return os.Chdir(dir)
}

func (hostBackend) Getenv(key osstr.String) (osstr.String, bool, error) {
	value, ok := os.LookupEnv(string(key))
	return osstr.String(value), ok, nil
}

func (hostBackend) Setenv(key, value osstr.String) error {
	return os.Setenv(string(key), string(value))
}

func (hostBackend) Unsetenv(key osstr.String) error {
	return os.Unsetenv(string(key))
}

func (hostBackend) Environ() []VarPair {
	env := os.Environ()
	pairs := make([]VarPair, 0, len(env))
	for _, kv := range env {
		if kv == "" {
			continue
		}
		// Keys are non-empty, but hidden Windows variables begin with
		// '=': look for the delimiter from the second byte on.
		eq := strings.IndexByte(kv[1:], '=')
		if eq < 0 {
			pairs = append(pairs, VarPair{Key: osstr.String(kv)})
			continue
		}
		eq++
		pairs = append(pairs, VarPair{
			Key:   osstr.String(kv[:eq]),
			Value: osstr.String(kv[eq+1:]),
		})
	}
	return pairs
}

func (hostBackend) Arguments() []osstr.String {
	args := make([]osstr.String, len(os.Args))
	for i, arg := range os.Args {
		args[i] = osstr.String(arg)
	}
	return args
}

func (hostBackend) CurrentExe() (string, error) {
	return os.Executable()
}

func (hostBackend) Platform() Platform {
	return hostPlatform
}
