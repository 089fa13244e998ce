package validatorx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validatorx "github.com/botfut/botfut/utils/validator"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"omitempty,brphone"`
	Start  string `json:"start" validate:"hhmm"`
	Date   string `json:"date" validate:"isodate"`
	Amount int64  `json:"amount" validate:"cents"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         sample
		wantFields []string
	}{
		{
			name: "valid",
			in:   sample{Name: "Ana", Phone: "11987654321", Start: "20:30", Date: "2024-02-29", Amount: 1000},
		},
		{
			name: "optional phone may be empty",
			in:   sample{Name: "Ana", Start: "00:00", Date: "2024-01-01"},
		},
		{
			name:       "every rule fails",
			in:         sample{Phone: "119876", Start: "24:00", Date: "2023-02-29", Amount: -1},
			wantFields: []string{"name", "phone", "start", "date", "amount"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.in)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)

			fields := make([]string, 0)
			for _, fe := range validatorx.FieldErrors(err) {
				fields = append(fields, fe.Field)
				assert.NotEmpty(t, fe.Message)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestFieldErrors(t *testing.T) {
	assert.Nil(t, validatorx.FieldErrors(nil))
	assert.Nil(t, validatorx.FieldErrors(errors.New("boom")))

	single := validatorx.FieldError{Field: "phone", Tag: "brphone", Message: "bad"}
	assert.Equal(t, []validatorx.FieldError{single}, validatorx.FieldErrors(single))
}

func TestIsValidTime(t *testing.T) {
	for s, want := range map[string]bool{
		"00:00": true,
		"09:30": true,
		"23:59": true,
		"24:00": false,
		"99:99": false,
		"9:30":  false,
		"":      false,
	} {
		assert.Equal(t, want, validatorx.IsValidTime(s), s)
	}
}

func TestIsCalendarDate(t *testing.T) {
	for s, want := range map[string]bool{
		"2024-02-29": true,
		"2023-02-29": false,
		"2023-04-31": false,
		"2023-12-31": true,
		"31/12/2023": false,
		"":           false,
	} {
		assert.Equal(t, want, validatorx.IsCalendarDate(s), s)
	}
}
