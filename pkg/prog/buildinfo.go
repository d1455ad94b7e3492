package prog

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
)

// Version identifies the version of vsub. On development commits, it
// identifies the next release.
const Version = "v0.3.0"

// VersionSuffix is appended to Version to build the full version string. It
// can be overridden with -ldflags "-X src.vsub.dev/pkg/prog.VersionSuffix=".
var VersionSuffix = "-dev"

// FullVersion returns Version with VersionSuffix and, when the binary carries
// VCS information, the short revision.
func FullVersion() string {
	v := Version + VersionSuffix
	if rev := revision(); rev != "" && VersionSuffix != "" {
		v += "." + rev
	}
	return v
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}

// VersionProgram prints the version with --version and build information
// with --buildinfo. It is not suitable otherwise.
type VersionProgram struct{}

func (VersionProgram) Run(fds [3]*os.File, f *Flags, _ []string) error {
	switch {
	case f.Version:
		fmt.Fprintln(fds[1], FullVersion())
	case f.BuildInfo && f.JSON:
		return json.NewEncoder(fds[1]).Encode(struct {
			Version   string `json:"version"`
			GoVersion string `json:"goversion"`
		}{FullVersion(), runtime.Version()})
	case f.BuildInfo:
		fmt.Fprintln(fds[1], "Version:", FullVersion())
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	default:
		return ErrNotSuitable
	}
	return nil
}
