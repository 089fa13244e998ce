package mask

// PhoneMaxDigits is the length of a national Brazilian mobile number: 2-digit area code plus a
// 9-digit subscriber number.
const PhoneMaxDigits = 11

// FormatPhoneNumber masks a phone number progressively.
//
//	0-2 digits   11
//	3-6 digits   (11) 9876
//	7-10 digits  (11) 9876-5432   landline 4-4 split
//	11 digits    (11) 98765-4321  mobile 5-4 split
//
// Digits beyond the eleventh are dropped.
func FormatPhoneNumber(input string) string {
	d := truncate(onlyDigits(input), PhoneMaxDigits)
	switch n := len(d); {
	case n <= 2:
		return d
	case n <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case n <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// RawDigits strips a display value down to its digits.
func RawDigits(display string) string {
	return onlyDigits(display)
}

// IsValidBrazilianPhone reports whether raw carries a complete national number
// (10 digits for landlines, 11 for mobiles).
func IsValidBrazilianPhone(raw string) bool {
	n := len(onlyDigits(raw))
	return n == 10 || n == PhoneMaxDigits
}
