// Package app contains the advisor's application core. It resolves the
// configuration, builds the logger and owns the single catalog session that
// every front end (one-shot commands, the menu shell, the TUI) drives.
package app
