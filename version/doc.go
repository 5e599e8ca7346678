// Package version reports build information for streamkit binaries.
//
// Version, commit and build time are set at compile time via -ldflags and
// fall back to the VCS stamp embedded by the Go toolchain:
//
//	go build -ldflags "-X github.com/kbukum/streamkit/version.Version=1.0.0" ./cmd/streamdemo
package version
