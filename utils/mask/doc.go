// Package mask turns free-form keystrokes into display masks and canonical values for the
// four input kinds used by Bot Fut forms: Brazilian phone numbers, calendar dates, clock times
// and money amounts.
//
// Every function is total and pure. Partial or malformed input degrades to the best partial
// mask (or zero / empty for money) and never produces an error; plausibility checks live in
// utils/validator.
package mask

import "strings"

// onlyDigits drops every rune that is not an ASCII digit.
func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
