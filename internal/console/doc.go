// Package console is the output sink shared by every scaffolding step.
//
// A Console is created once by the CLI and handed to each component
// explicitly. It renders section rules, banners and key/value tables with
// lipgloss, forwards external command output line by line, and owns the
// structured slog.Logger used for diagnostics.
package console
