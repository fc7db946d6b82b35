// Package component composes a new project out of independent setup steps.
//
// A Spec captures the project name, target path and the user's feature
// selection. Plan turns a Spec into an ordered list of Components (common
// files first, then the backend and frontend features, then the proxy),
// and Factory runs them against the project directory, stopping at the
// first failure. Each Component writes only the paths it owns.
package component
