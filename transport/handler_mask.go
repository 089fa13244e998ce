package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/utils/errors"
)

// Mask handler
// @Summary Mask one keystroke
// @Description Returns what a masked input should display and the canonical value it holds
// @Tags Mask
// @Accept json
// @Produce json
// @Param kind path string true "phone, date, time, money or money_digits"
// @Param request body model.MaskRequest true "Mask Request"
// @Success 200 {object} model.MaskResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /v1/mask/{kind} [post]
func (s *RestHandler) Mask(w http.ResponseWriter, r *http.Request) {
	var req model.MaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Kind = constant.MaskKind(mux.Vars(r)["kind"])

	res, err := s.MaskApp.Apply(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
