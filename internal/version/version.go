// Package version holds the build version, overridable at link time with
// -ldflags "-X github.com/propfolio/backend/internal/version.Version=...".
package version

// Version is the current application version.
var Version = "dev"
