// internal/version/version.go
package version

// Version is overridden at build time with
// -ldflags "-X github.com/Elococin/aso-offtarget-pipeline/internal/version.Version=v1.2.3".
var Version = "dev"
