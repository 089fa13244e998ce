package form

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/botfut/botfut/cmd/config"
	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	redisrepo "github.com/botfut/botfut/repository/redis"
	submissionrepo "github.com/botfut/botfut/repository/submission"
	txrepo "github.com/botfut/botfut/repository/tx"
	"github.com/botfut/botfut/thirdparty/rabbitmq"
	appctx "github.com/botfut/botfut/utils/context"
	"github.com/botfut/botfut/utils/errors"
	"github.com/botfut/botfut/utils/logger"
	"github.com/botfut/botfut/utils/pagination"
	validatorx "github.com/botfut/botfut/utils/validator"
)

type FormApp interface {
	Normalize(ctx context.Context, kind constant.FormKind, raw map[string]string) (*model.NormalizeResponse, error)
	SaveDraft(ctx context.Context, session appctx.Session, kind constant.FormKind, raw map[string]string) (*model.DraftResponse, error)
	GetDraft(ctx context.Context, session appctx.Session, kind constant.FormKind) (*model.DraftResponse, error)
	DeleteDraft(ctx context.Context, session appctx.Session, kind constant.FormKind) error
	Submit(ctx context.Context, session appctx.Session, kind constant.FormKind, raw map[string]string) (*model.SubmitResponse, error)
	ListSubmissions(ctx context.Context, session appctx.Session, kind constant.FormKind, page, perPage int) (*model.SubmissionListResponse, error)
	GetSubmissionStatus(ctx context.Context, submissionID uint64) (*model.SubmissionStatusResponse, error)
	MarkDelivered(ctx context.Context, submissionID uint64) error
	MarkFailed(ctx context.Context, submissionID uint64, reason string) error
}

type formAppImpl struct {
	config         *config.Config
	txRepo         txrepo.TxRepository
	submissionRepo submissionrepo.SubmissionRepository
	redisRepo      redisrepo.Repository
	publisher      rabbitmq.SubmissionPublisher
	now            func() time.Time
}

func NewFormApp(config *config.Config, txRepo txrepo.TxRepository, submissionRepo submissionrepo.SubmissionRepository, redisRepo redisrepo.Repository, publisher rabbitmq.SubmissionPublisher) FormApp {
	return &formAppImpl{
		config:         config,
		txRepo:         txRepo,
		submissionRepo: submissionRepo,
		redisRepo:      redisRepo,
		publisher:      publisher,
		now:            time.Now,
	}
}

// Normalize never fails on incomplete or implausible values; those are reported in the response.
func (s *formAppImpl) Normalize(ctx context.Context, kind constant.FormKind, raw map[string]string) (*model.NormalizeResponse, error) {
	normalize, ok := normalizers[kind]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrUnknownForm)
	}

	values, display := normalize(raw)
	fieldErrs := validatorx.FieldErrors(validatorx.ValidateStruct(values))

	return &model.NormalizeResponse{
		Kind:    kind,
		Values:  values,
		Display: display,
		Valid:   len(fieldErrs) == 0,
		Errors:  fieldErrs,
	}, nil
}

func draftKey(session appctx.Session, kind constant.FormKind) redisrepo.DraftKey {
	return redisrepo.DraftKey{WorkspaceID: session.WorkspaceID, UserID: session.UserID, Kind: kind}
}

// SaveDraft keeps the raw values as typed so the operator can resume the form later.
func (s *formAppImpl) SaveDraft(ctx context.Context, session appctx.Session, kind constant.FormKind, raw map[string]string) (*model.DraftResponse, error) {
	if !kind.Valid() {
		return nil, errors.SetCustomError(constant.ErrUnknownForm)
	}
	if session.WorkspaceID == 0 {
		return nil, errors.SetCustomError(constant.ErrWorkspaceRequired)
	}

	if err := s.redisRepo.SaveDraft(ctx, draftKey(session, kind), raw, s.config.Form.DraftTTL); err != nil {
		logger.Error("[SaveDraft] err redisRepo.SaveDraft", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.DraftResponse{Kind: kind, Fields: raw}, nil
}

func (s *formAppImpl) GetDraft(ctx context.Context, session appctx.Session, kind constant.FormKind) (*model.DraftResponse, error) {
	if !kind.Valid() {
		return nil, errors.SetCustomError(constant.ErrUnknownForm)
	}
	if session.WorkspaceID == 0 {
		return nil, errors.SetCustomError(constant.ErrWorkspaceRequired)
	}

	fields, err := s.redisRepo.GetDraft(ctx, draftKey(session, kind))
	if err != nil {
		logger.Error("[GetDraft] err redisRepo.GetDraft", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if fields == nil {
		return nil, errors.SetCustomError(constant.ErrDraftNotFound)
	}

	return &model.DraftResponse{Kind: kind, Fields: fields}, nil
}

func (s *formAppImpl) DeleteDraft(ctx context.Context, session appctx.Session, kind constant.FormKind) error {
	if !kind.Valid() {
		return errors.SetCustomError(constant.ErrUnknownForm)
	}
	if session.WorkspaceID == 0 {
		return errors.SetCustomError(constant.ErrWorkspaceRequired)
	}

	if err := s.redisRepo.DeleteDraft(ctx, draftKey(session, kind)); err != nil {
		logger.Error("[DeleteDraft] err redisRepo.DeleteDraft", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Submit stores a valid form as a pending submission and announces it for delivery.
func (s *formAppImpl) Submit(ctx context.Context, session appctx.Session, kind constant.FormKind, raw map[string]string) (*model.SubmitResponse, error) {
	if session.WorkspaceID == 0 {
		return nil, errors.SetCustomError(constant.ErrWorkspaceRequired)
	}

	normalized, err := s.Normalize(ctx, kind, raw)
	if err != nil {
		return nil, err
	}
	if !normalized.Valid {
		return nil, errors.SetValidationError(normalized.Errors)
	}

	payload, err := json.Marshal(normalized.Values)
	if err != nil {
		logger.Error("[Submit] err json.Marshal", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Submit] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	createdAt := s.now().UTC()
	submissionID, err := s.submissionRepo.InsertTx(ctx, tx, &model.SubmissionEntity{
		UserID:      session.UserID,
		WorkspaceID: session.WorkspaceID,
		Kind:        kind,
		Payload:     payload,
		Status:      constant.SubmissionStatusPending,
		CreatedAt:   createdAt,
	})
	if err != nil {
		logger.Error("[Submit] insert submission", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Submit] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	msg := model.SubmissionMessage{
		SubmissionID: submissionID,
		WorkspaceID:  session.WorkspaceID,
		Kind:         kind,
		Payload:      payload,
		CreatedAt:    createdAt,
	}
	if err := s.publisher.PublishSubmission(ctx, msg); err != nil {
		logger.Error("[Submit] publish submission", zap.Uint64("submission_id", submissionID), zap.String("error", err.Error()))
	}

	if err := s.redisRepo.DeleteDraft(ctx, draftKey(session, kind)); err != nil {
		logger.Warn("[Submit] delete draft", zap.String("error", err.Error()))
	}

	return &model.SubmitResponse{
		SubmissionID: submissionID,
		Status:       constant.SubmissionStatusPending.String(),
		Values:       normalized.Values,
	}, nil
}

func (s *formAppImpl) ListSubmissions(ctx context.Context, session appctx.Session, kind constant.FormKind, page, perPage int) (*model.SubmissionListResponse, error) {
	if session.WorkspaceID == 0 {
		return nil, errors.SetCustomError(constant.ErrWorkspaceRequired)
	}
	if kind != "" && !kind.Valid() {
		return nil, errors.SetCustomError(constant.ErrUnknownForm)
	}

	page, perPage = pagination.Normalize(page, perPage)
	items, total, err := s.submissionRepo.List(ctx, &model.SubmissionFilter{
		WorkspaceID: session.WorkspaceID,
		Kind:        kind,
	}, page, perPage)
	if err != nil {
		logger.Error("[ListSubmissions] err submissionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalPages := pagination.TotalPages(total, perPage)
	return &model.SubmissionListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Pages:      pagination.Window(page, totalPages, pagination.DefaultWindow),
	}, nil
}

func (s *formAppImpl) GetSubmissionStatus(ctx context.Context, submissionID uint64) (*model.SubmissionStatusResponse, error) {
	existing, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		logger.Error("[GetSubmissionStatus] err submissionRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrSubmissionNotFound)
	}

	return &model.SubmissionStatusResponse{
		SubmissionID: existing.ID,
		Status:       existing.Status.String(),
	}, nil
}

func (s *formAppImpl) MarkDelivered(ctx context.Context, submissionID uint64) error {
	updated, err := s.submissionRepo.MarkDelivered(ctx, submissionID)
	if err != nil {
		logger.Error("[MarkDelivered] err submissionRepo.MarkDelivered", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if updated {
		return nil
	}
	return s.settledError(ctx, "[MarkDelivered]", submissionID)
}

func (s *formAppImpl) MarkFailed(ctx context.Context, submissionID uint64, reason string) error {
	updated, err := s.submissionRepo.MarkFailed(ctx, submissionID, reason)
	if err != nil {
		logger.Error("[MarkFailed] err submissionRepo.MarkFailed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if updated {
		return nil
	}
	return s.settledError(ctx, "[MarkFailed]", submissionID)
}

// settledError tells a missing submission apart from one that already left pending.
func (s *formAppImpl) settledError(ctx context.Context, fn string, submissionID uint64) error {
	existing, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		logger.Error(fn+" err submissionRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrSubmissionNotFound)
	}
	return errors.SetCustomError(constant.ErrInvalidSubmissionStatus)
}
