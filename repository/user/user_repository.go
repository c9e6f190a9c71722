package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/gadgetfix/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error)
	Count(ctx context.Context, filter *model.UserFilter) (int64, error)
	Update(ctx context.Context, id uint64, update *model.UserUpdate) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (name, email, phone, password_hash, role, is_blocked, profile_image, address, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	userColumns     = `id, name, email, phone, password_hash, role, is_blocked, profile_image, address, created_at, updated_at`
	getUserBase     = `SELECT ` + userColumns + ` FROM user WHERE true`
	countUserBase   = `SELECT COUNT(*) FROM user WHERE true`
	deleteUserQuery = `DELETE FROM user WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.Phone, data.PasswordHash,
		data.Role, data.IsBlocked, data.ProfileImage, data.Address)
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

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	where, args := buildUserFilter(filter)

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, getUserBase+where+" LIMIT 1", args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	where, args := buildUserFilter(filter)

	users := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &users, getUserBase+where+" ORDER BY created_at DESC, id DESC", args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SQL) Count(ctx context.Context, filter *model.UserFilter) (int64, error) {
	where, args := buildUserFilter(filter)

	var total int64
	if err := s.conn.GetContext(ctx, &total, countUserBase+where, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, update *model.UserUpdate) error {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *update.Phone)
	}
	if update.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *update.Address)
	}
	if update.ProfileImage != nil {
		sets = append(sets, "profile_image = ?")
		args = append(args, *update.ProfileImage)
	}
	if update.Role != nil {
		sets = append(sets, "role = ?")
		args = append(args, *update.Role)
	}
	if update.IsBlocked != nil {
		sets = append(sets, "is_blocked = ?")
		args = append(args, *update.IsBlocked)
	}
	if update.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *update.PasswordHash)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE user SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func buildUserFilter(filter *model.UserFilter) (string, []any) {
	if filter == nil {
		return "", nil
	}

	var where strings.Builder
	args := make([]any, 0, 4)

	if filter.ID != 0 {
		where.WriteString(" AND id = ?")
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		where.WriteString(" AND email = ?")
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		where.WriteString(" AND phone = ?")
		args = append(args, filter.Phone)
	}
	if filter.Role != "" {
		where.WriteString(" AND role = ?")
		args = append(args, filter.Role)
	}
	return where.String(), args
}
