package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/botfut/botfut/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	IsWorkspaceMember(ctx context.Context, userID, workspaceID uint64) (bool, error)
	AddWorkspace(ctx context.Context, userID, workspaceID uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO operator (name, email, phone, password_hash, created_at) VALUES (?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, email, phone, password_hash, created_at, updated_at FROM operator WHERE true`

	countWorkspaceMemberQuery = `SELECT COUNT(*) FROM operator_workspace WHERE operator_id = ? AND workspace_id = ?`
	insertWorkspaceQuery      = `INSERT IGNORE INTO operator_workspace (operator_id, workspace_id, created_at) VALUES (?, ?, NOW())`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns the first operator matching every non-zero filter field, or nil when none does.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) IsWorkspaceMember(ctx context.Context, userID, workspaceID uint64) (bool, error) {
	var n int
	if err := s.conn.GetContext(ctx, &n, countWorkspaceMemberQuery, userID, workspaceID); err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddWorkspace grants the operator access to a workspace. Granting twice is not an error.
func (s *SQL) AddWorkspace(ctx context.Context, userID, workspaceID uint64) error {
	_, err := s.conn.ExecContext(ctx, insertWorkspaceQuery, userID, workspaceID)
	return err
}
