// Package cli defines the Cobra command tree for the projtools CLI. Each file
// in this package registers one top-level command (create, electron-python,
// doctor, etc.) with the root command. Command implementations delegate to
// internal packages for the work and only handle flag parsing and output.
package cli
