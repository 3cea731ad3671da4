package build

// Populated at build time via ldflags
var (
	Version = "development" // nolint: gochecknoglobals
	Commit  = "uncommitted" // nolint: gochecknoglobals
	Time    = "unknown"     // nolint: gochecknoglobals
)
