package mask

import "strings"

// NewPhoneSlots returns an empty row of single-digit fields for a full phone number.
func NewPhoneSlots() []string {
	return make([]string, PhoneMaxDigits)
}

// FillPhoneSlots writes the digits of input into slots starting at index and returns the new
// row; slots itself is left untouched.
//
// An input without digits clears the slot at index. A paste carrying at least len(slots) digits
// always fills from the first slot, whichever field received it, so pasting a full number gives
// the same result as typing it.
func FillPhoneSlots(slots []string, index int, input string) []string {
	out := make([]string, len(slots))
	copy(out, slots)
	if len(out) == 0 {
		return out
	}

	if index < 0 {
		index = 0
	}
	if index >= len(out) {
		index = len(out) - 1
	}

	d := onlyDigits(input)
	if d == "" {
		out[index] = ""
		return out
	}
	if len(d) >= len(out) {
		index = 0
	}

	for i := 0; i < len(d) && index+i < len(out); i++ {
		out[index+i] = d[i : i+1]
	}
	return out
}

// JoinSlots returns the canonical digits held by a row of slots.
func JoinSlots(slots []string) string {
	return onlyDigits(strings.Join(slots, ""))
}
