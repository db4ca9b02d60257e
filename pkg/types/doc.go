// Package types defines the core types and capability interfaces used
// throughout hop. This includes the bookmark model (Link, LinkTarget and
// LinkPair), the HomeType configuration value, and the UserDirs,
// Directories, SymLinks and StdIO contracts the program is written against.
package types
