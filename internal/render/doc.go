// Package render turns embedded text/template files into project files.
//
// Templates live under templates/<set>/<file>.tmpl and are addressed by
// their path relative to templates/, e.g. "project/setup.py.tmpl". A
// missing variable is a render failure rather than an empty string.
package render
