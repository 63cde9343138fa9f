package version

// Version is the attachid version, overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/attachid/internal/version.Version=...".
var Version = "0.1.0-dev"
