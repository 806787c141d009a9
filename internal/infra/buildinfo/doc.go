// Package buildinfo provides build information for cipherkit.
//
// Values are injected via ldflags and completed from the module build
// information embedded by the Go toolchain:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash (falls back to vcs.revision)
//   - BuildTime: Build timestamp (falls back to vcs.time)
//   - GoVersion: Go compiler version
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/cipherkit/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
