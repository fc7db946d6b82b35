// Package manifest handles the structured documents projtools reads and
// writes: option presets supplied with `create --preset` (YAML, JSON or
// JSONC) and the package.json generated for Electron+Python projects. Both
// are validated against embedded JSON Schemas, and version strings are
// checked as semantic versions.
package manifest
