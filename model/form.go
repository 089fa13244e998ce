package model

import (
	"github.com/botfut/botfut/constant"
	validatorx "github.com/botfut/botfut/utils/validator"
)

// FormRequest holds the raw field values of a form exactly as typed.
type FormRequest struct {
	Fields map[string]string `json:"fields" validate:"required"`
}

// PlayerForm is the canonical player registration.
type PlayerForm struct {
	Name      string `json:"name" validate:"required"`
	Nickname  string `json:"nickname,omitempty"`
	Phone     string `json:"phone" validate:"required,brphone"`
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,isodate"`
}

// GameForm is the canonical game schedule.
type GameForm struct {
	Title     string `json:"title" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time,omitempty" validate:"omitempty,hhmm"`
	Location  string `json:"location,omitempty"`
	FeeCents  int64  `json:"fee_cents" validate:"cents"`
}

// TransactionForm is one cash-book entry.
type TransactionForm struct {
	Description string `json:"description" validate:"required"`
	AmountCents int64  `json:"amount_cents" validate:"gt=0"`
	Date        string `json:"date" validate:"required,isodate"`
	Type        string `json:"type" validate:"required,oneof=income expense"`
	PlayerPhone string `json:"player_phone,omitempty" validate:"omitempty,brphone"`
}

// MembershipForm is a player's monthly membership.
type MembershipForm struct {
	PlayerPhone     string `json:"player_phone" validate:"required,brphone"`
	MonthlyFeeCents int64  `json:"monthly_fee_cents" validate:"gt=0"`
	DueDay          int    `json:"due_day" validate:"gte=1,lte=28"`
	StartDate       string `json:"start_date" validate:"required,isodate"`
}

// BotConfigForm configures the chat bot that reminds players about games and fees.
type BotConfigForm struct {
	BotPhone           string `json:"bot_phone" validate:"required,brphone"`
	ReminderTime       string `json:"reminder_time" validate:"required,hhmm"`
	ReminderDaysBefore int    `json:"reminder_days_before" validate:"gte=0,lte=7"`
	Greeting           string `json:"greeting,omitempty" validate:"max=500"`
}

// NormalizeResponse is the canonical form, the masked values to echo into the inputs and the
// plausibility errors. Incomplete values are reported here, never as request errors.
type NormalizeResponse struct {
	Kind    constant.FormKind       `json:"kind"`
	Values  interface{}             `json:"values"`
	Display map[string]string       `json:"display"`
	Valid   bool                    `json:"valid"`
	Errors  []validatorx.FieldError `json:"errors,omitempty"`
}

type DraftResponse struct {
	Kind   constant.FormKind `json:"kind"`
	Fields map[string]string `json:"fields"`
}
