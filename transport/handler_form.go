package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	appctx "github.com/botfut/botfut/utils/context"
	"github.com/botfut/botfut/utils/errors"
	validatorx "github.com/botfut/botfut/utils/validator"
)

func formKind(r *http.Request) constant.FormKind {
	return constant.FormKind(mux.Vars(r)["kind"])
}

func decodeForm(r *http.Request) (*model.FormRequest, error) {
	var req model.FormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return &req, nil
}

func sessionFrom(r *http.Request) (appctx.Session, error) {
	s, ok := appctx.GetSession(r.Context())
	if !ok {
		return appctx.Session{}, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return s, nil
}

// NormalizeForm handler
// @Summary Normalize form
// @Description Masks every field, converts it to its canonical value and reports implausible ones
// @Tags Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "player, game, transaction, membership or bot_config"
// @Param request body model.FormRequest true "Raw fields"
// @Success 200 {object} model.NormalizeResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /v1/forms/{kind}/normalize [post]
func (s *RestHandler) NormalizeForm(w http.ResponseWriter, r *http.Request) {
	req, err := decodeForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FormApp.Normalize(r.Context(), formKind(r), req.Fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SaveDraft handler
// @Summary Save form draft
// @Tags Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Workspace-ID header int true "Workspace"
// @Param kind path string true "Form kind"
// @Param request body model.FormRequest true "Raw fields"
// @Success 200 {object} model.DraftResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /v1/forms/{kind}/draft [put]
func (s *RestHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := decodeForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FormApp.SaveDraft(r.Context(), sess, formKind(r), req.Fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetDraft handler
// @Summary Get form draft
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Param X-Workspace-ID header int true "Workspace"
// @Param kind path string true "Form kind"
// @Success 200 {object} model.DraftResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /v1/forms/{kind}/draft [get]
func (s *RestHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FormApp.GetDraft(r.Context(), sess, formKind(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteDraft handler
// @Summary Discard form draft
// @Tags Forms
// @Security BearerAuth
// @Param X-Workspace-ID header int true "Workspace"
// @Param kind path string true "Form kind"
// @Success 204
// @Router /v1/forms/{kind}/draft [delete]
func (s *RestHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.FormApp.DeleteDraft(r.Context(), sess, formKind(r)); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// SubmitForm handler
// @Summary Submit form
// @Description Stores a valid form and queues it for delivery to Bot Fut
// @Tags Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Workspace-ID header int true "Workspace"
// @Param kind path string true "Form kind"
// @Param request body model.FormRequest true "Raw fields"
// @Success 200 {object} model.SubmitResponse
// @Failure 422 {object} transport.ErrorResponse
// @Router /v1/forms/{kind}/submit [post]
func (s *RestHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	req, err := decodeForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FormApp.Submit(r.Context(), sess, formKind(r), req.Fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListSubmissions handler
// @Summary List submissions
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Param X-Workspace-ID header int true "Workspace"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Items per page" default(10)
// @Param kind query string false "Form kind"
// @Success 200 {object} model.SubmissionListResponse
// @Router /v1/submissions [get]
func (s *RestHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	res, err := s.FormApp.ListSubmissions(r.Context(), sess, constant.FormKind(q.Get("kind")), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
