// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep brand identifiers in one place.
package meta

const (
	// Project Identity
	AppName   = "create-weft-app"
	EnvPrefix = "WEFT"

	// Directory Layout
	HomeDir = ".weft"

	// Hosted Service
	DefaultCloudAPI = "https://cloud.weft.dev/api/v1"
	DashboardURL    = "https://cloud.weft.dev/projects"
)
