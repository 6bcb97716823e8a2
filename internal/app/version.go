package app

// Version is overridden at build time with -ldflags "-X wordpace/internal/app.Version=...".
var Version = "dev"
