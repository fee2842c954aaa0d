package types

// Version is the build version of nextver. It is overwritten at link time
// with -ldflags "-X github.com/m-mizutani/nextver/pkg/domain/types.Version=...".
var Version = "dev"
