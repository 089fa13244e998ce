package mask_test

import (
	"testing"

	"github.com/botfut/botfut/utils/mask"
)

func TestFillPhoneSlots_PasteMatchesTyping(t *testing.T) {
	const number = "11987654321"

	typed := mask.NewPhoneSlots()
	for i, r := range number {
		typed = mask.FillPhoneSlots(typed, i, string(r))
	}
	want := mask.JoinSlots(typed)
	if want != number {
		t.Fatalf("typed digits = %q, want %q", want, number)
	}

	for index := 0; index < mask.PhoneMaxDigits; index++ {
		pasted := mask.FillPhoneSlots(mask.NewPhoneSlots(), index, "(11) 98765-4321")
		if got := mask.JoinSlots(pasted); got != want {
			t.Fatalf("paste at slot %d = %q, want %q", index, got, want)
		}
	}
}

func TestFillPhoneSlots(t *testing.T) {
	base := mask.FillPhoneSlots(mask.NewPhoneSlots(), 0, "119")

	tests := []struct {
		name  string
		slots []string
		index int
		input string
		want  string
	}{
		{name: "partial paste starts at index", slots: base, index: 3, input: "87", want: "11987"},
		{name: "partial paste is cut at the end", slots: mask.NewPhoneSlots(), index: 9, input: "123", want: "12"},
		{name: "empty input clears the slot", slots: base, index: 2, input: "", want: "11"},
		{name: "negative index is clamped", slots: mask.NewPhoneSlots(), index: -4, input: "5", want: "5"},
		{name: "index past the end is clamped", slots: mask.NewPhoneSlots(), index: 40, input: "5", want: "5"},
		{name: "non digit input clears the slot", slots: base, index: 2, input: "x", want: "11"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := mask.JoinSlots(mask.FillPhoneSlots(tt.slots, tt.index, tt.input))
			if got != tt.want {
				t.Fatalf("FillPhoneSlots() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFillPhoneSlots_DoesNotMutateInput(t *testing.T) {
	slots := mask.NewPhoneSlots()
	_ = mask.FillPhoneSlots(slots, 0, "11987654321")
	if mask.JoinSlots(slots) != "" {
		t.Fatalf("input slots were modified: %v", slots)
	}
	if got := mask.FillPhoneSlots(nil, 0, "1"); len(got) != 0 {
		t.Fatalf("nil slots should stay empty, got %v", got)
	}
}
