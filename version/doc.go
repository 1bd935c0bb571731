// Package version exposes build information for puzzle binaries.
//
// Values are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/puzzle/version.Version=1.2.0"
//
// Missing values are filled from the module build info when available.
package version
