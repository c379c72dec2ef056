package format

import (
	"fmt"
	"time"
)

var multipliers = []struct {
	shift uint
	name  string
}{
	{40, "Ti"},
	{30, "Gi"},
	{20, "Mi"},
	{10, "Ki"},
}

func formatBytes(bytes uint64) string {
	shift, multiplier := getMultiplier(bytes)
	return fmt.Sprintf("%d %sB", bytes>>shift, multiplier)
}

// getMultiplier prefers a multiplier when the shifted value exceeds 100 or
// when the value is an exact multiple.
func getMultiplier(value uint64) (uint, string) {
	for _, multiplier := range multipliers {
		shifted := value >> multiplier.shift
		mask := uint64(1)<<multiplier.shift - 1
		if shifted > 100 || (shifted >= 1 && value&mask == 0) {
			return multiplier.shift, multiplier.name
		}
	}
	return 0, ""
}

func formatDuration(duration time.Duration) string {
	if ns := duration.Nanoseconds(); ns < 1000 {
		return fmt.Sprintf("%dns", ns)
	} else if us := float64(duration) / float64(time.Microsecond); us < 1000 {
		return fmt.Sprintf("%.3gµs", us)
	} else if ms := float64(duration) / float64(time.Millisecond); ms < 1000 {
		return fmt.Sprintf("%.3gms", ms)
	} else if s := float64(duration) / float64(time.Second); s < 60 {
		return fmt.Sprintf("%.3gs", s)
	}
	return (duration - duration%time.Second).String()
}
