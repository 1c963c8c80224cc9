package version

// Version is the release tag baked into all three binaries.
const Version = "1.0.0"
