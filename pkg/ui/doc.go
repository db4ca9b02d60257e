// Package ui renders hop's results for the terminal.
//
// Listing and jump output stay plain so they can be consumed by the shell;
// tables, confirmations and errors are styled with lipgloss when the output
// is a color-capable terminal.
package ui
