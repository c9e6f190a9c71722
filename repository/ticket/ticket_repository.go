package ticket

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
)

type SQL struct {
	conn *sqlx.DB
}

type TicketRepository interface {
	Create(ctx context.Context, data *model.TicketEntity) (*model.TicketEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.TicketEntity, error)
	List(ctx context.Context, filter *model.TicketFilter) ([]model.TicketRow, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.TicketStatus) error
}

func NewTicketRepository(conn *sqlx.DB) TicketRepository {
	return &SQL{conn: conn}
}

const (
	insertTicketQuery = `INSERT INTO support_ticket (user_id, subject, message, status, created_at) VALUES (?, ?, ?, ?, NOW())`

	getTicketByID = `SELECT id, user_id, subject, message, status, created_at, updated_at FROM support_ticket WHERE id = ?`

	listTicketBase = `SELECT t.id, t.user_id, t.subject, t.message, t.status, t.created_at, t.updated_at,
u.name AS submitter_name, u.email AS submitter_email
FROM support_ticket t
LEFT JOIN user u ON u.id = t.user_id
WHERE true`

	updateTicketStatusQuery = `UPDATE support_ticket SET status = ?, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.TicketEntity) (*model.TicketEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertTicketQuery, data.UserID, data.Subject, data.Message, data.Status)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.TicketEntity, error) {
	var entity model.TicketEntity
	if err := s.conn.QueryRowxContext(ctx, getTicketByID, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.TicketFilter) ([]model.TicketRow, error) {
	query := listTicketBase
	args := make([]any, 0, 1)
	if filter != nil && filter.UserID != 0 {
		query += " AND t.user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY t.created_at DESC, t.id DESC"

	rows := make([]model.TicketRow, 0)
	if err := s.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.TicketStatus) error {
	_, err := s.conn.ExecContext(ctx, updateTicketStatusQuery, status, id)
	return err
}
