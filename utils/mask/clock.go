package mask

const timeDigits = 4

// FormatTimeInput masks keystrokes as HH:mm. Hours and minutes are not range checked, so
// "9999" becomes "99:99"; see validator.IsValidTime.
func FormatTimeInput(raw string) string {
	d := truncate(onlyDigits(raw), timeDigits)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + ":" + d[2:]
}
