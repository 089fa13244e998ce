package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/utils/errors"
	validatorx "github.com/botfut/botfut/utils/validator"
)

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

// GetSubmissionStatus handler
// @Summary Get submission status
// @Tags Internal
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} model.SubmissionStatusResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /internal/v1/submissions/{id} [get]
func (s *RestHandler) GetSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.FormApp.GetSubmissionStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// MarkDelivered handler
// @Summary Mark submission delivered
// @Tags Internal
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 204
// @Failure 409 {object} transport.ErrorResponse
// @Router /internal/v1/submissions/{id}/delivered [post]
func (s *RestHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.FormApp.MarkDelivered(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// MarkFailed handler
// @Summary Mark submission failed
// @Tags Internal
// @Accept json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body model.MarkFailedRequest true "Failure reason"
// @Success 204
// @Failure 409 {object} transport.ErrorResponse
// @Router /internal/v1/submissions/{id}/failed [post]
func (s *RestHandler) MarkFailed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.MarkFailedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.FormApp.MarkFailed(r.Context(), id, req.Reason); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}

// AddWorkspace handler
// @Summary Grant a workspace to an operator
// @Tags Internal
// @Accept json
// @Security BearerAuth
// @Param id path int true "Operator ID"
// @Param request body model.WorkspaceGrantRequest true "Workspace"
// @Success 204
// @Failure 400 {object} transport.ErrorResponse
// @Router /internal/v1/operators/{id}/workspaces [post]
func (s *RestHandler) AddWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.WorkspaceGrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UserApp.AddWorkspace(r.Context(), id, req.WorkspaceID); err != nil {
		writeError(w, err)
		return
	}

	writeNoContent(w)
}
