package relaygen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort         = "Generate relay settings files from a settings workbook"
	MsgGenerateShort     = "Generate settings files for every relay of a type"
	MsgWordBitsShort     = "Preview the word bits extracted for each relay"
	MsgRelaysShort       = "List the configured relay types"
	MsgFamiliesShort     = "List the configured device families"
	MsgRegionsShort      = "List the selectable regions of a relay type"
	MsgTemplateShort     = "Inspect template directories"
	MsgTemplateInfoShort = "Show the [INFO] section of a template"
	MsgConfigShort       = "Manage the relaygen configuration"
	MsgConfigInitShort   = "Write a commented starter config file"
	MsgConfigShowShort   = "Print the effective configuration"
	MsgTopicsShort       = "Display available documentation topics"
	MsgTopicsLong        = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort      = "Print version information"
	MsgCompletionShort   = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Config file (default: ./relaygen.toml, then the user config dir)"
	MsgFlagFormat        = "Output format: auto, term, text, json or yaml"
	MsgFlagRelay         = "Relay type key (see 'relaygen relays')"
	MsgFlagWorkbook      = "Settings workbook: .xlsx file, .db/.sqlite file or csv directory"
	MsgFlagTemplate      = "Template directory copied for each relay"
	MsgFlagOutput        = "Directory receiving one subdirectory per relay"
	MsgFlagExclude       = "Group tags left as plain template copies (repeatable, comma separated)"
	MsgFlagExcludeRegion = "Region labels whose groups are left as plain template copies"
	MsgFlagNoComments    = "Write word bits without the setting comments"
	MsgFlagNoPMU         = "Do not emit the PMSTN word bit"
	MsgFlagNoIP          = "Do not emit the IPADDR word bit"
	MsgFlagJobs          = "Number of relays processed at once"
	MsgFlagSource        = "Workbook source kind: xlsx, csv or sqlite (default: from the path)"
	MsgFlagSheet         = "Override the sheet holding the relay type's tables"
	MsgFlagClassTable    = "Override the relay class table name"
	MsgFlagSettingsTable = "Override the settings table name"
	MsgFlagFamily        = "Override the device family of the relay type"
	MsgFlagWatch         = "Regenerate whenever the workbook or template changes"
	MsgFlagID            = "Limit the preview to these relay identifiers"
	MsgFlagForce         = "Overwrite an existing config file"
	MsgFlagPath          = "Write the config file here instead of the user config dir"

	// Status messages
	MsgWatching     = "Watching %s and %s (Ctrl-C to stop)"
	MsgStopWatching = "Stopped watching"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/wordbits-long.txt
	msgWordBitsLongRaw string
	MsgWordBitsLong    = strings.TrimSpace(msgWordBitsLongRaw)

	//go:embed msgs/wordbits-example.txt
	msgWordBitsExampleRaw string
	MsgWordBitsExample    = strings.TrimRight(msgWordBitsExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
