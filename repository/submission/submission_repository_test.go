package submission

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
)

var submissionColumns = []string{"id", "user_id", "workspace_id", "kind", "payload", "status", "failure_reason", "created_at", "delivered_at"}

func newMockRepo(t *testing.T) (*sqlx.DB, SubmissionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	conn := sqlx.NewDb(db, "mysql")
	return conn, NewSubmissionRepository(conn), mock
}

func TestSQL_InsertTx(t *testing.T) {
	conn, repo, mock := newMockRepo(t)
	createdAt := time.Date(2024, 5, 15, 20, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertSubmissionQuery)).
		WithArgs(int64(1), int64(9), "player", sqlmock.AnyArg(), int64(constant.SubmissionStatusPending), createdAt).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	tx, err := conn.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	id, err := repo.InsertTx(context.Background(), tx, &model.SubmissionEntity{
		UserID:      1,
		WorkspaceID: 9,
		Kind:        constant.FormPlayer,
		Payload:     types.JSONText(`{"name":"Ana"}`),
		Status:      constant.SubmissionStatusPending,
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, uint64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetByID(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		_, repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectSubmissionBase + " WHERE id = ?")).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(submissionColumns).
				AddRow(42, 1, 9, "game", []byte(`{"title":"Pelada"}`), 1, nil, now, nil))

		got, err := repo.GetByID(context.Background(), 42)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, constant.FormGame, got.Kind)
		assert.Equal(t, constant.SubmissionStatusPending, got.Status)
		assert.JSONEq(t, `{"title":"Pelada"}`, got.Payload.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		_, repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectSubmissionBase + " WHERE id = ?")).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(submissionColumns))

		got, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSQL_List(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		filter    *model.SubmissionFilter
		doMock    func(mock sqlmock.Sqlmock)
		wantLen   int
		wantTotal int64
		wantErr   bool
	}{
		{
			name:   "filtered by kind",
			filter: &model.SubmissionFilter{WorkspaceID: 9, Kind: constant.FormTransaction},
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(countSubmissionBase + " WHERE workspace_id = ? AND kind = ?")).
					WithArgs(int64(9), "transaction").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
				mock.ExpectQuery(regexp.QuoteMeta(selectSubmissionBase + " WHERE workspace_id = ? AND kind = ? ORDER BY id DESC LIMIT ? OFFSET ?")).
					WithArgs(int64(9), "transaction", int64(10), int64(10)).
					WillReturnRows(sqlmock.NewRows(submissionColumns).
						AddRow(1, 1, 9, "transaction", []byte(`{}`), 2, nil, now, now))
			},
			wantLen:   1,
			wantTotal: 11,
		},
		{
			name:   "count error",
			filter: &model.SubmissionFilter{WorkspaceID: 9},
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(countSubmissionBase + " WHERE workspace_id = ?")).
					WithArgs(int64(9)).
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, repo, mock := newMockRepo(t)
			tt.doMock(mock)

			items, total, err := repo.List(context.Background(), tt.filter, 2, 10)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Len(t, items, tt.wantLen)
			assert.Equal(t, tt.wantTotal, total)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_MarkDeliveredAndFailed(t *testing.T) {
	_, repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(markDeliveredQuery)).
		WithArgs(int64(constant.SubmissionStatusDelivered), int64(42), int64(constant.SubmissionStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(markFailedQuery)).
		WithArgs(int64(constant.SubmissionStatusFailed), "api down", int64(43), int64(constant.SubmissionStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkDelivered(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkFailed(context.Background(), 43, "api down")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}
