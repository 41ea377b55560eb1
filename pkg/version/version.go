// Package version holds the single version string shared by the engine
// API and the CLI's --version output.
package version

// Version is the engine's stable version string, returned unchanged by
// engine.Version() and the FFI version() call.
const Version = "0.1.0"
