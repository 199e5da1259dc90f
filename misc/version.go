// Package misc keeps build time information.
package misc

// Set by the linker: -X mqfilter/misc.version=... -X mqfilter/misc.gitHash=...
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "mqfilter"

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}

func GetAppName() string {
	return appName
}
