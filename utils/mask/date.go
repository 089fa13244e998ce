package mask

import "regexp"

const dateDigits = 8

var isoDatePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// FormatDateInput masks keystrokes as DD/MM/YYYY. Separators are inserted only once the next
// digit arrives.
func FormatDateInput(raw string) string {
	d := truncate(onlyDigits(raw), dateDigits)
	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// DateToISO converts a completed DD/MM/YYYY value into YYYY-MM-DD. Anything that does not carry
// exactly eight digits yields "", which callers treat as no value. The calendar is not checked.
func DateToISO(display string) string {
	d := onlyDigits(display)
	if len(d) != dateDigits {
		return ""
	}
	return d[4:] + "-" + d[2:4] + "-" + d[:2]
}

// DateToDisplay converts YYYY-MM-DD (or an RFC 3339 timestamp starting with it) into DD/MM/YYYY.
func DateToDisplay(iso string) string {
	m := isoDatePrefix.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}
