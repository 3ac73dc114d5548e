// Package misc provides program identity values set at build time.
package misc

var (
	appName = "bpc"
	version = "0.9.0"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
