package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botfut/botfut/model"
)

func newMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
		WithArgs("Ana", "ana@botfut.app", "11987654321", "hash").
		WillReturnResult(sqlmock.NewResult(7, 1))

	got, err := repo.Create(context.Background(), &model.UserEntity{
		Name:         "Ana",
		Email:        "ana@botfut.app",
		Phone:        "11987654321",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Get(t *testing.T) {
	columns := []string{"id", "name", "email", "phone", "password_hash", "created_at", "updated_at"}
	now := time.Now()

	tests := []struct {
		name    string
		filter  *model.UserFilter
		doMock  func(mock sqlmock.Sqlmock)
		want    *model.UserEntity
		wantErr bool
	}{
		{
			name:   "found by phone",
			filter: &model.UserFilter{Phone: "11987654321"},
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getUserBase+" AND phone = ? LIMIT 1")).
					WithArgs("11987654321").
					WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Ana", "ana@botfut.app", "11987654321", "hash", now, nil))
			},
			want: &model.UserEntity{ID: 1, Name: "Ana", Email: "ana@botfut.app", Phone: "11987654321", PasswordHash: "hash", CreatedAt: now},
		},
		{
			name:   "not found",
			filter: &model.UserFilter{Email: "nobody@botfut.app"},
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getUserBase+" AND email = ? LIMIT 1")).
					WithArgs("nobody@botfut.app").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			want: nil,
		},
		{
			name:   "query error",
			filter: &model.UserFilter{ID: 3},
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getUserBase+" AND id = ? LIMIT 1")).
					WithArgs(int64(3)).
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.doMock(mock)

			got, err := repo.Get(context.Background(), tt.filter)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_IsWorkspaceMember(t *testing.T) {
	tests := []struct {
		name    string
		doMock  func(mock sqlmock.Sqlmock)
		want    bool
		wantErr bool
	}{
		{
			name: "member",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(countWorkspaceMemberQuery)).
					WithArgs(int64(7), int64(3)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "not a member",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(countWorkspaceMemberQuery)).
					WithArgs(int64(7), int64(3)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
		},
		{
			name: "query error",
			doMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(countWorkspaceMemberQuery)).
					WithArgs(int64(7), int64(3)).
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.doMock(mock)

			got, err := repo.IsWorkspaceMember(context.Background(), 7, 3)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_AddWorkspace(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertWorkspaceQuery)).
		WithArgs(int64(7), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddWorkspace(context.Background(), 7, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
