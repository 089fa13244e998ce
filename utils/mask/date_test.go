package mask_test

import (
	"testing"

	"github.com/botfut/botfut/utils/mask"
)

func TestFormatDateInput(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "1", want: "1"},
		{raw: "15", want: "15"},
		{raw: "150", want: "15/0"},
		{raw: "1505", want: "15/05"},
		{raw: "15052", want: "15/05/2"},
		{raw: "15052024", want: "15/05/2024"},
		{raw: "15/05/20241999", want: "15/05/2024"},
		{raw: "ab15-05", want: "15/05"},
	}
	for _, tt := range tests {
		if got := mask.FormatDateInput(tt.raw); got != tt.want {
			t.Errorf("FormatDateInput(%q) = %q, want %q", tt.raw, got, tt.want)
		}
		if again := mask.FormatDateInput(tt.want); again != tt.want {
			t.Errorf("FormatDateInput not idempotent on %q: %q", tt.want, again)
		}
	}
}

func TestDateToISO(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{name: "complete", display: "15/05/2024", want: "2024-05-15"},
		{name: "incomplete", display: "15/05/202", want: ""},
		{name: "empty", display: "", want: ""},
		{name: "calendar is not checked", display: "31/02/2023", want: "2023-02-31"},
		{name: "too many digits", display: "15/05/20241", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mask.DateToISO(tt.display); got != tt.want {
				t.Fatalf("DateToISO(%q) = %q, want %q", tt.display, got, tt.want)
			}
		})
	}
}

func TestDateToISO_OnlyOnceEightDigits(t *testing.T) {
	const typed = "150520249"
	for n := 0; n <= len(typed); n++ {
		got := mask.DateToISO(mask.FormatDateInput(typed[:n]))
		switch {
		case n < 8 && got != "":
			t.Fatalf("%d digits gave %q, want empty", n, got)
		case n >= 8 && got != "2024-05-15":
			t.Fatalf("%d digits gave %q, want 2024-05-15", n, got)
		}
	}
}

func TestDateToDisplay(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{iso: "2024-05-15", want: "15/05/2024"},
		{iso: "2024-05-15T10:00:00Z", want: "15/05/2024"},
		{iso: "15/05/2024", want: ""},
		{iso: "2024-5-15", want: ""},
		{iso: "", want: ""},
	}
	for _, tt := range tests {
		if got := mask.DateToDisplay(tt.iso); got != tt.want {
			t.Errorf("DateToDisplay(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}

	if got := mask.DateToISO(mask.DateToDisplay("1999-12-31")); got != "1999-12-31" {
		t.Errorf("display round trip = %q", got)
	}
}
