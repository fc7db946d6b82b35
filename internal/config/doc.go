// Package config manages user-level settings stored at ~/.projtools/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default frontend framework, the initial package version, and the
// author identity used by the Electron+Python scaffold.
package config
