package form

import (
	"strconv"
	"strings"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/utils/mask"
)

// normalizer turns raw field values into the canonical form plus what each input should show.
type normalizer func(raw map[string]string) (interface{}, map[string]string)

var normalizers = map[constant.FormKind]normalizer{
	constant.FormPlayer:      normalizePlayer,
	constant.FormGame:        normalizeGame,
	constant.FormTransaction: normalizeTransaction,
	constant.FormMembership:  normalizeMembership,
	constant.FormBotConfig:   normalizeBotConfig,
}

func normalizePlayer(raw map[string]string) (interface{}, map[string]string) {
	display := map[string]string{}
	f := model.PlayerForm{
		Name:     text(raw, display, "name"),
		Nickname: text(raw, display, "nickname"),
	}
	f.Phone = phone(raw, display, "phone")
	f.BirthDate = date(raw, display, "birth_date")
	return f, display
}

func normalizeGame(raw map[string]string) (interface{}, map[string]string) {
	display := map[string]string{}
	f := model.GameForm{
		Title:    text(raw, display, "title"),
		Location: text(raw, display, "location"),
	}
	f.Date = date(raw, display, "date")
	f.StartTime = clock(raw, display, "start_time")
	f.EndTime = clock(raw, display, "end_time")
	f.FeeCents = money(raw, display, "fee")
	return f, display
}

func normalizeTransaction(raw map[string]string) (interface{}, map[string]string) {
	display := map[string]string{}
	f := model.TransactionForm{
		Description: text(raw, display, "description"),
		Type:        strings.ToLower(text(raw, display, "type")),
	}
	f.AmountCents = money(raw, display, "amount")
	f.Date = date(raw, display, "date")
	f.PlayerPhone = phone(raw, display, "player_phone")
	return f, display
}

func normalizeMembership(raw map[string]string) (interface{}, map[string]string) {
	display := map[string]string{}
	f := model.MembershipForm{}
	f.PlayerPhone = phone(raw, display, "player_phone")
	f.MonthlyFeeCents = money(raw, display, "monthly_fee")
	f.DueDay = number(raw, display, "due_day")
	f.StartDate = date(raw, display, "start_date")
	return f, display
}

func normalizeBotConfig(raw map[string]string) (interface{}, map[string]string) {
	display := map[string]string{}
	f := model.BotConfigForm{
		Greeting: text(raw, display, "greeting"),
	}
	f.BotPhone = phone(raw, display, "bot_phone")
	f.ReminderTime = clock(raw, display, "reminder_time")
	f.ReminderDaysBefore = number(raw, display, "reminder_days_before")
	return f, display
}

func text(raw, display map[string]string, key string) string {
	v := strings.TrimSpace(raw[key])
	display[key] = v
	return v
}

func phone(raw, display map[string]string, key string) string {
	masked := mask.FormatPhoneNumber(raw[key])
	display[key] = masked
	return mask.RawDigits(masked)
}

// date accepts the typed DD/MM/YYYY form as well as an ISO date coming back from a draft.
func date(raw, display map[string]string, key string) string {
	v := strings.TrimSpace(raw[key])
	if shown := mask.DateToDisplay(v); shown != "" {
		display[key] = shown
		return mask.DateToISO(shown)
	}
	masked := mask.FormatDateInput(v)
	display[key] = masked
	return mask.DateToISO(masked)
}

func clock(raw, display map[string]string, key string) string {
	masked := mask.FormatTimeInput(raw[key])
	display[key] = masked
	return masked
}

// money leaves the display empty until something was typed.
func money(raw, display map[string]string, key string) int64 {
	v := strings.TrimSpace(raw[key])
	if mask.RawDigits(v) == "" {
		display[key] = ""
		return 0
	}
	cents := mask.ParseToCents(v)
	display[key] = mask.FormatCentsToDisplay(cents)
	return cents
}

func number(raw, display map[string]string, key string) int {
	d := mask.RawDigits(raw[key])
	if len(d) > 3 {
		d = d[:3]
	}
	display[key] = d
	n, _ := strconv.Atoi(d)
	return n
}
