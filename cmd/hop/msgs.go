package hop

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Bookmark directories and jump back to them"
	MsgListShort       = "List link names, one per line"
	MsgTableShort      = "Show links with their targets"
	MsgJumpShort       = "Print the directory a link points at"
	MsgMarkShort       = "Bookmark a directory"
	MsgDeleteShort     = "Delete a link"
	MsgSnippetShort    = "Output shell integration snippet"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgVersionShort    = "Print version information"

	MsgGenConfigLong = "Print the default configuration to stdout.\n\nWith --effective, print the configuration hop is actually using after\nmerging the config file, HOP_* environment variables and flags.\nWith --write, create the user config file; an existing file is never overwritten."

	// Result messages
	MsgConfigWritten = "Wrote default configuration to %s\n"
	MsgVersionFormat = "hop version %s\n  commit: %s\n  built:  %s\n"

	// Error context lines
	MsgCtxList   = "Could not retrieve list of links"
	MsgCtxJump   = "Could not retrieve jump target: %s"
	MsgCtxMark   = "Could not mark directory: %s"
	MsgCtxDelete = "Could not delete link: %s"
	MsgCtxConfig = "Could not load configuration"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagHome       = "Use PATH as the bookmark home instead of ~/.hop"
	MsgFlagConfigFile = "Read configuration from this file"
	MsgFlagYes        = "Delete without asking for confirmation"
	MsgFlagShell      = "Shell type (bash, zsh, fish)"
	MsgFlagEffective  = "Print the merged configuration instead of the defaults"
	MsgFlagWrite      = "Write the defaults to the user config file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/mark-long.txt
	msgMarkLongRaw string
	MsgMarkLong    = strings.TrimSpace(msgMarkLongRaw)

	//go:embed msgs/mark-example.txt
	msgMarkExampleRaw string
	MsgMarkExample    = strings.TrimRight(msgMarkExampleRaw, "\n")

	//go:embed msgs/delete-long.txt
	msgDeleteLongRaw string
	MsgDeleteLong    = strings.TrimSpace(msgDeleteLongRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/snippet-example.txt
	msgSnippetExampleRaw string
	MsgSnippetExample    = strings.TrimRight(msgSnippetExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
