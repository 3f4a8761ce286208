package dataship

import "time"

var optionMaxRows = 50
var optionWarnings = true
var optionNullString = "(null)"
var optionDateFormat = time.RFC3339

// SetOptionMaxRows changes the number of groups printed by Result.String() before the table is truncated.
// If n is 0 or less, every group is printed.
func SetOptionMaxRows(n int) {
	optionMaxRows = n
}

// SetOptionWarnings toggles whether warnings are logged for suspicious but valid input (default: true).
func SetOptionWarnings(set bool) {
	optionWarnings = set
}

// SetOptionNullString changes how nil values are rendered in records and printed tables (default: "(null)").
func SetOptionNullString(s string) {
	optionNullString = s
}

// SetOptionDateFormat changes the layout used to render time.Time values (default: time.RFC3339).
func SetOptionDateFormat(layout string) {
	optionDateFormat = layout
}
