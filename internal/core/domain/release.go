package domain

// Package is the project metadata a release is cut from.
type Package struct {
	Name    string
	Version string
}

// VersionLabel returns the version prefixed with "v".
func (p Package) VersionLabel() string {
	return "v" + p.Version
}

// Platform identifies the host a release is built on, using Go's GOOS and GOARCH names.
type Platform struct {
	OS   string
	Arch string
}

// nodeOS maps GOOS values to the names Node.js reports from os.platform().
var nodeOS = map[string]string{
	"windows": "win32",
	"solaris": "sunos",
	"illumos": "sunos",
}

// nodeArch maps GOARCH values to the names Node.js reports from os.arch().
var nodeArch = map[string]string{
	"amd64":    "x64",
	"386":      "ia32",
	"ppc64le":  "ppc64",
	"mipsle":   "mipsel",
	"mips64le": "mips64el",
}

// Label returns the platform label, e.g. "linux-x64" or "win32-ia32".
func (p Platform) Label() string {
	osName := p.OS
	if mapped, ok := nodeOS[osName]; ok {
		osName = mapped
	}
	arch := p.Arch
	if mapped, ok := nodeArch[arch]; ok {
		arch = mapped
	}
	return osName + "-" + arch
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return p.Label()
}
