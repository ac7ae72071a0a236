package timer

import "fmt"

// FormatShort renders seconds as MM:SS. Minutes are not capped, so 6000
// seconds gives "100:00".
func FormatShort(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatLong renders seconds as H:MM:SS once an hour is reached, M:SS before.
func FormatLong(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}
