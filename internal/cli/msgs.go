package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Batch rename files with wildcard patterns"
	MsgRenameShort     = "Batch rename files in a directory based on the provided patterns"
	MsgConfigShort     = "Show the effective configuration"
	MsgPatternsShort   = "Explain the wildcard pattern syntax"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Prompts
	MsgPromptPattern1 = "Enter the pattern or filename to search for in file names"
	MsgPromptPattern2 = "Enter the pattern to replace with in file names"

	// Informational output
	MsgInfoDirectory = "Renaming files in directory"
	MsgInfoPattern1  = "Pattern or filename to search for"
	MsgInfoPattern2  = "Pattern to replace with"
	MsgRenameDone    = "File renaming complete."

	// Version output
	MsgVersionFormat = "renamer version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration"
	MsgErrNoInput     = "no value entered for %s"
	MsgErrWorkingDir  = "failed to determine working directory"
	MsgErrRenderGuide = "failed to render pattern guide"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagConfig   = "Path to the configuration file"
	MsgFlagPattern1 = "Pattern or filename to search for in file names. Use * as wildcard for any characters."
	MsgFlagPattern2 = "Pattern to replace pattern1 with in file names. Use * to insert wildcard content from pattern1."
	MsgFlagCaptures = "How * in pattern2 is filled: first or positional"
	MsgFlagTemplate = "Print a commented configuration template instead"
	MsgFlagPath     = "Print the configuration file location instead"
	MsgFlagRaw      = "Print the guide as plain markdown"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/rename-long.txt
	msgRenameLongRaw string
	MsgRenameLong    = strings.TrimSpace(msgRenameLongRaw)

	//go:embed msgs/rename-example.txt
	msgRenameExampleRaw string
	MsgRenameExample    = strings.TrimSpace(msgRenameExampleRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/patterns.md
	MsgPatternsGuide string
)
