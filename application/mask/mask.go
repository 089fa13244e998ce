package mask

import (
	"context"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/utils/errors"
	"github.com/botfut/botfut/utils/mask"
	validatorx "github.com/botfut/botfut/utils/validator"
)

// MaskApp applies an input mask to one keystroke or paste.
type MaskApp interface {
	Apply(ctx context.Context, req *model.MaskRequest) (*model.MaskResponse, error)
}

type maskAppImpl struct{}

func NewMaskApp() MaskApp {
	return &maskAppImpl{}
}

func (s *maskAppImpl) Apply(ctx context.Context, req *model.MaskRequest) (*model.MaskResponse, error) {
	res := &model.MaskResponse{Kind: req.Kind}

	switch req.Kind {
	case constant.MaskPhone:
		res.Display = mask.FormatPhoneNumber(req.Input)
		res.Value = mask.RawDigits(res.Display)
		res.Complete = mask.IsValidBrazilianPhone(res.Value)
	case constant.MaskDate:
		res.Display = mask.FormatDateInput(req.Input)
		res.Value = mask.DateToISO(res.Display)
		res.Complete = res.Value != ""
	case constant.MaskTime:
		res.Display = mask.FormatTimeInput(req.Input)
		if validatorx.IsValidTime(res.Display) {
			res.Value = res.Display
			res.Complete = true
		}
	case constant.MaskMoney:
		cents := mask.ParseToCents(req.Input)
		res.Cents = &cents
		res.Display = mask.FormatCentsToDisplay(cents)
		res.Value = res.Display
		res.Complete = mask.RawDigits(req.Input) != ""
	case constant.MaskMoneyDigits:
		entry := mask.FormatFromDigits(mask.RawDigits(req.Input))
		res.Cents = &entry.Cents
		res.Display = entry.Display
		res.Value = entry.Display
		res.Complete = entry.Display != ""
	default:
		return nil, errors.SetCustomError(constant.ErrUnknownMaskKind)
	}

	return res, nil
}
