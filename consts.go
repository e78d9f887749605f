package procenv

import "runtime"

// A Platform holds fixed facts about a target platform, resolved at build
// time for the host backend.
type Platform struct {
	// Arch names the CPU architecture using its conventional spelling
	// ("x86_64", "aarch64", ...).
	Arch string

	// Family is the broad operating system family: "unix", "windows", or
	// "wasm".
	Family string

	// OS names the specific operating system ("linux", "darwin",
	// "windows", ...).
	OS string

	// DLLPrefix, DLLSuffix, and DLLExtension describe shared-library file
	// names: "lib", ".so", and "so" on Linux.
	DLLPrefix    string
	DLLSuffix    string
	DLLExtension string

	// EXESuffix and EXEExtension describe executable file names: ".exe"
	// and "exe" on Windows, empty elsewhere.
	EXESuffix    string
	EXEExtension string
}

// archNames maps Go architecture names to their conventional spellings.
var archNames = map[string]string{
	"386":      "x86",
	"amd64":    "x86_64",
	"arm":      "arm",
	"arm64":    "aarch64",
	"loong64":  "loongarch64",
	"mips":     "mips",
	"mips64":   "mips64",
	"mips64le": "mips64el",
	"mipsle":   "mipsel",
	"ppc64":    "powerpc64",
	"ppc64le":  "powerpc64le",
	"riscv64":  "riscv64",
	"s390x":    "s390x",
	"sparc64":  "sparc64",
	"wasm":     "wasm32",
}

// platformFor resolves the constants for a GOOS/GOARCH pair. Unknown
// architectures keep the Go name.
func platformFor(goos, goarch string) Platform {
	arch, ok := archNames[goarch]
	if !ok {
		arch = goarch
	}

	p := Platform{
		Arch:      arch,
		OS:        goos,
		DLLPrefix: "lib",
		DLLSuffix: ".so",
	}
	switch goos {
	case "windows":
		p.Family = "windows"
		p.DLLPrefix = ""
		p.DLLSuffix = ".dll"
		p.EXESuffix = ".exe"
	case "js", "wasip1":
		p.Family = "wasm"
		p.DLLPrefix = ""
		p.DLLSuffix = ".wasm"
		p.EXESuffix = ".wasm"
	case "darwin", "ios":
		p.Family = "unix"
		p.DLLSuffix = ".dylib"
	default:
		p.Family = "unix"
	}

	if p.DLLSuffix != "" {
		p.DLLExtension = p.DLLSuffix[1:]
	}
	if p.EXESuffix != "" {
		p.EXEExtension = p.EXESuffix[1:]
	}
	return p
}

var hostPlatform = platformFor(runtime.GOOS, runtime.GOARCH)

// HostPlatform returns the constants for the build target.
func HostPlatform() Platform {
	return hostPlatform
}
