package constant

// FormKind names one of the Bot Fut forms handled by the gateway.
type FormKind string

const (
	FormPlayer      FormKind = "player"
	FormGame        FormKind = "game"
	FormTransaction FormKind = "transaction"
	FormMembership  FormKind = "membership"
	FormBotConfig   FormKind = "bot_config"
)

var FormKinds = []FormKind{FormPlayer, FormGame, FormTransaction, FormMembership, FormBotConfig}

func (k FormKind) Valid() bool {
	for _, known := range FormKinds {
		if k == known {
			return true
		}
	}
	return false
}

// MaskKind selects the formatter applied by the keystroke endpoint.
type MaskKind string

const (
	MaskPhone       MaskKind = "phone"
	MaskDate        MaskKind = "date"
	MaskTime        MaskKind = "time"
	MaskMoney       MaskKind = "money"
	MaskMoneyDigits MaskKind = "money_digits"
)

type SubmissionStatus int

const (
	SubmissionStatusPending   SubmissionStatus = 1
	SubmissionStatusDelivered SubmissionStatus = 2
	SubmissionStatusFailed    SubmissionStatus = 3
)

func (s SubmissionStatus) String() string {
	switch s {
	case SubmissionStatusPending:
		return "pending"
	case SubmissionStatusDelivered:
		return "delivered"
	case SubmissionStatusFailed:
		return "failed"
	}
	return "unknown"
}

// ParseSubmissionStatus is the inverse of SubmissionStatus.String.
func ParseSubmissionStatus(name string) (SubmissionStatus, bool) {
	for _, s := range []SubmissionStatus{SubmissionStatusPending, SubmissionStatusDelivered, SubmissionStatusFailed} {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

const TransactionIncome = "income"
const TransactionExpense = "expense"
