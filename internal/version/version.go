package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/markhtml/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/markhtml/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/markhtml/internal/version.Date={{.Date}}
)

// Info is the version block printed by "markhtml version".
func Info() string {
	return "markhtml version " + Version + "\n" +
		"  commit: " + Commit + "\n" +
		"  built:  " + Date + "\n"
}
