/*
Package format provides convenience functions for formatting.
*/
package format

import (
	"time"
)

// Duration is similar to the time.Duration.String method from the standard
// library but shows only 3 digits of precision when the duration is less than
// 1 minute.
func Duration(duration time.Duration) string {
	return formatDuration(duration)
}

// FormatBytes returns a string with the number of bytes specified converted
// into a human-friendly format with a binary multiplier (i.e. MiB).
func FormatBytes(bytes uint64) string {
	return formatBytes(bytes)
}

// GetMultiplier returns the preferred base-2 multiplier (i.e. Ki, Mi) and the
// right shift for the specified value.
func GetMultiplier(value uint64) (uint, string) {
	return getMultiplier(value)
}
