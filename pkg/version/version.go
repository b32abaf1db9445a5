package version

// Set at build time with -ldflags "-X github.com/docker/toggle/pkg/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
)
