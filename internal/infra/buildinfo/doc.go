// Package buildinfo exposes build information for vmadmin.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/vmadmin-go/internal/infra/buildinfo.Version=v1.0.0"
//
// GoVersion falls back to the running toolchain when not injected.
package buildinfo
