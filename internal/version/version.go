// internal/version/version.go
package version

// Version is overridden at build time with
// -ldflags "-X seqalign/internal/version.Version=v1.2.3".
var Version = "dev"
