package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/ameerdhi7/bashy/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("bashy %s (commit=%s, date=%s)", Version, Commit, Date)
}
