// Package misc keeps build time information.
package misc

// Set with -ldflags "-X sonata/misc.version=... -X sonata/misc.buildHash=...".
var (
	version   = "dev"
	buildHash = "unknown"
)

const appName = "sonata"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return buildHash
}
