// Package buildinfo carries release identifiers stamped in at link time:
//
//	-ldflags "-X presto/internal/buildinfo.Version=v1.2.0 -X presto/internal/buildinfo.Commit=abc123"
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short prefers a release version, then a commit, then "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Banner names the firmware build on the boot console and the host window.
func Banner() string {
	return "Presto " + Short()
}
