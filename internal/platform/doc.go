// Package platform provides cross-platform filesystem helpers used by the
// scaffolders: permission changes that degrade to no-ops on Windows, and
// file writes that create missing parent directories.
package platform
