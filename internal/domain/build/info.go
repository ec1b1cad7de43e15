// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String is the one-line version shown by `includs --version`.
func (i Info) String() string {
	if i.Version == "" {
		i.Version = "dev"
	}
	return fmt.Sprintf("%s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}

// RepoURL returns the project repository URL.
func RepoURL() string {
	return "https://github.com/bnema/includs"
}
