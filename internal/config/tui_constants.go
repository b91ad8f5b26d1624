package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetTitleWidth is the preferred width for workout titles.
	TargetTitleWidth = 28

	// MinTitleWidth is the minimum width for workout titles.
	MinTitleWidth = 10

	// DescriptionWidth wraps workout descriptions in detail panes.
	DescriptionWidth = 56
)

// Display limits.
const (
	// MaxSearchResults limits the calendar search result list.
	MaxSearchResults = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxNotesLength is the maximum notes length accepted from the UI.
	MaxNotesLength = 500

	// DateInputLength is the length of a YYYY-MM-DD date.
	DateInputLength = 10
)
