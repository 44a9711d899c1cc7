// Package buildinfo reports the version of the crayon binary.
//
// Release builds inject the values with ldflags:
//
//	go build -ldflags "-X github.com/crayonviz/crayon/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/crayonviz/crayon/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/crayonviz/crayon/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries installed without ldflags (go install from the module proxy)
// fall back to the module version and VCS stamps the toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Injected with ldflags; see the package comment.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	if Version != "dev" {
		return
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			Date = s.Value
		}
	}
}

// String returns the version, commit, and build date on separate lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the template crayon hands to cobra for --version output.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
