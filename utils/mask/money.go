package mask

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxMoneyDigits keeps every amount inside int64 cents.
const maxMoneyDigits = 15

// maxCents is the first amount, in cents, that no longer fits maxMoneyDigits.
var maxCents = decimal.New(1, maxMoneyDigits)

// DigitEntry is the state of a type-as-cents money field.
type DigitEntry struct {
	Display string `json:"display"`
	Cents   int64  `json:"cents"`
}

// ParseToCents converts a typed or pasted amount in reais into integer cents.
//
// A leading "R$" and a trailing "c" are accepted case-insensitively; the "c" form means the
// digits already are cents. Otherwise the value is read as reais, multiplied by 100 and rounded
// half away from zero. Empty or unparseable input is 0, and so is any amount of more than
// fifteen cent digits. Signs are ignored.
func ParseToCents(input string) int64 {
	s := strings.TrimSpace(input)
	if len(s) >= 2 && strings.EqualFold(s[:2], "r$") {
		s = strings.TrimSpace(s[2:])
	}

	asCents := false
	if n := len(s); n > 0 && (s[n-1] == 'c' || s[n-1] == 'C') {
		asCents = true
		s = s[:n-1]
	}

	var cents decimal.Decimal
	if asCents {
		d := onlyDigits(s)
		if d == "" {
			return 0
		}
		v, err := decimal.NewFromString(d)
		if err != nil {
			return 0
		}
		cents = v
	} else {
		normalized := normalizeDecimal(s)
		if normalized == "" {
			return 0
		}
		v, err := decimal.NewFromString(normalized)
		if err != nil {
			return 0
		}
		cents = v.Shift(2).Round(0)
	}

	if cents.GreaterThanOrEqual(maxCents) {
		return 0
	}
	return cents.IntPart()
}

// normalizeDecimal rewrites a pt-BR or en-US amount as a plain decimal string.
//
// With both separators present the last one is the decimal mark. A single comma is always the
// decimal mark, a single dot too; a separator repeated on its own is grouping.
func normalizeDecimal(s string) string {
	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')

	sep := -1
	switch {
	case lastComma >= 0 && lastDot >= 0:
		sep = max(lastComma, lastDot)
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 {
			sep = lastComma
		}
	case lastDot >= 0:
		if strings.Count(s, ".") == 1 {
			sep = lastDot
		}
	}
	if sep < 0 {
		return onlyDigits(s)
	}

	intPart := onlyDigits(s[:sep])
	frac := onlyDigits(s[sep+1:])
	if intPart == "" {
		intPart = "0"
	}
	if frac == "" {
		return intPart
	}
	return intPart + "." + frac
}

// FormatCentsToDisplay renders cents the pt-BR way: dot grouping, comma decimals, two places.
// No currency symbol is emitted.
func FormatCentsToDisplay(cents int64) string {
	amount := decimal.New(cents, -2)
	intPart, frac, _ := strings.Cut(amount.Abs().StringFixed(2), ".")

	out := groupThousands(intPart) + "," + frac
	if amount.IsNegative() {
		return "-" + out
	}
	return out
}

// FormatFromDigits reads every typed digit as cents, so "1234" is 12,34. Digits past the
// fifteenth are ignored.
func FormatFromDigits(rawDigits string) DigitEntry {
	d := onlyDigits(rawDigits)
	if d == "" {
		return DigitEntry{}
	}
	d = truncate(strings.TrimLeft(d, "0"), maxMoneyDigits)
	if d == "" {
		return DigitEntry{Display: FormatCentsToDisplay(0)}
	}

	v, err := decimal.NewFromString(d)
	if err != nil {
		return DigitEntry{}
	}
	cents := v.IntPart()
	return DigitEntry{Display: FormatCentsToDisplay(cents), Cents: cents}
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
