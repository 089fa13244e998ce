package submission

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SubmissionRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SubmissionEntity) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*model.SubmissionEntity, error)
	List(ctx context.Context, filter *model.SubmissionFilter, page, perPage int) ([]model.SubmissionEntity, int64, error)
	MarkDelivered(ctx context.Context, id uint64) (bool, error)
	MarkFailed(ctx context.Context, id uint64, reason string) (bool, error)
}

func NewSubmissionRepository(conn *sqlx.DB) SubmissionRepository {
	return &SQL{conn: conn}
}

const (
	insertSubmissionQuery = `INSERT INTO submission (user_id, workspace_id, kind, payload, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	selectSubmissionBase = `SELECT id, user_id, workspace_id, kind, payload, status, failure_reason, created_at, delivered_at FROM submission`

	countSubmissionBase = `SELECT COUNT(*) FROM submission`

	markDeliveredQuery = `UPDATE submission SET status = ?, delivered_at = NOW(), failure_reason = NULL WHERE id = ? AND status = ?`

	markFailedQuery = `UPDATE submission SET status = ?, failure_reason = ? WHERE id = ? AND status = ?`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.SubmissionEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertSubmissionQuery,
		data.UserID, data.WorkspaceID, data.Kind, data.Payload, data.Status, data.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns nil when the submission does not exist.
func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.SubmissionEntity, error) {
	var entity model.SubmissionEntity
	if err := r.conn.GetContext(ctx, &entity, selectSubmissionBase+" WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) List(ctx context.Context, filter *model.SubmissionFilter, page, perPage int) ([]model.SubmissionEntity, int64, error) {
	where, args := buildWhere(filter)

	var total int64
	if err := r.conn.GetContext(ctx, &total, countSubmissionBase+where, args...); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	query := selectSubmissionBase + where + " ORDER BY id DESC LIMIT ? OFFSET ?"
	rows, err := r.conn.QueryxContext(ctx, query, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.SubmissionEntity, 0)
	for rows.Next() {
		var it model.SubmissionEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// MarkDelivered moves a pending submission to delivered. It reports false when the submission
// was not pending.
func (r *SQL) MarkDelivered(ctx context.Context, id uint64) (bool, error) {
	res, err := r.conn.ExecContext(ctx, markDeliveredQuery,
		constant.SubmissionStatusDelivered, id, constant.SubmissionStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkFailed moves a pending submission to failed with the given reason.
func (r *SQL) MarkFailed(ctx context.Context, id uint64, reason string) (bool, error) {
	res, err := r.conn.ExecContext(ctx, markFailedQuery,
		constant.SubmissionStatusFailed, reason, id, constant.SubmissionStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func buildWhere(filter *model.SubmissionFilter) (string, []any) {
	where := " WHERE workspace_id = ?"
	args := []any{filter.WorkspaceID}
	if filter.Kind != "" {
		where += " AND kind = ?"
		args = append(args, filter.Kind)
	}
	return where, args
}
