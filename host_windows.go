//go:build windows

package procenv

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"

	"github.com/pgavlin/procenv/pathlist"
)

// HomeDir consults HOME and USERPROFILE first, then asks the shell for the
// user's profile folder.
func (hostBackend) HomeDir() (string, bool) {
	for _, key := range []string{"HOME", "USERPROFILE"} {
		if home := os.Getenv(key); home != "" {
			return home, true
		}
	}
	home, err := windows.KnownFolderPath(windows.FOLDERID_Profile, windows.KF_FLAG_DEFAULT)
	if err != nil || home == "" {
		return "", false
	}
	return home, true
}

// TempDir uses the system temporary-path lookup, which consults TMP, TEMP,
// USERPROFILE, and the Windows directory in that order.
func (hostBackend) TempDir() string {
	buf := make([]uint16, windows.MAX_PATH+1)
	for {
		n, err := windows.GetTempPath(uint32(len(buf)), &buf[0])
		if err != nil {
			return os.TempDir()
		}
		if int(n) <= len(buf) {
			return strings.TrimSuffix(windows.UTF16ToString(buf[:n]), `\`)
		}
		buf = make([]uint16, n)
	}
}

func (hostBackend) PathList() pathlist.Convention {
	return pathlist.Windows()
}
