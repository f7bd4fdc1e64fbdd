// Package cli is the advisor's command-line surface. It builds the cobra
// command tree, turns flags into an app.Config and maps failures onto
// ExitError codes.
package cli
