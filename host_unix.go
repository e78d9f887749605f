//go:build !windows

package procenv

import (
	"os"
	"runtime"

	"github.com/mitchellh/go-homedir"

	"github.com/pgavlin/procenv/pathlist"
)

// HomeDir consults HOME first, then falls back to the user database.
func (hostBackend) HomeDir() (string, bool) {
	if home := os.Getenv("HOME"); home != "" {
		return home, true
	}
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return "", false
	}
	return home, true
}

// TempDir consults TMPDIR first. Android has no global temporary directory,
// so it falls back to /data/local/tmp there and /tmp everywhere else.
func (hostBackend) TempDir() string {
	if dir := os.Getenv("TMPDIR"); dir != "" {
		return dir
	}
	if runtime.GOOS == "android" {
		return "/data/local/tmp"
	}
	return "/tmp"
}

func (hostBackend) PathList() pathlist.Convention {
	return pathlist.Posix()
}
