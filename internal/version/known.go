package version

const (
	LatestRelease  = "3.3.2"
	LatestSnapshot = "3.3.3-SNAPSHOT"

	// Default is used when no version is selected.
	Default = LatestRelease
)

// Known lists published releases, oldest first.
var Known = []string{
	"3.0.0",
	"3.1.0", "3.1.1", "3.1.2", "3.1.3", "3.1.4", "3.1.5", "3.1.6",
	"3.2.0", "3.2.1", "3.2.2", "3.2.3",
	"3.3.0", "3.3.1", "3.3.2",
}
