// Package runner executes external build commands on behalf of the
// scaffolders. Output lines are forwarded to a callback as they arrive while
// the call blocks until the process exits; the last few lines are kept so a
// failure can be reported with context.
package runner
