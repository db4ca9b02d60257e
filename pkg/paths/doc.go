// Package paths provides centralized path handling for hop.
//
// It knows where the user's home directory is, where hop keeps its
// configuration and log files (following the XDG Base Directory
// specification via github.com/adrg/xdg), and how a types.HomeType is
// turned into a concrete bookmark home path.
package paths
