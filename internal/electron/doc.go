// Package electron scaffolds Electron desktop apps with an embedded Python
// backend. Unlike the component factory it refuses to touch an existing
// target directory, then lays out a fixed tree and renders a fixed list of
// templates.
package electron
