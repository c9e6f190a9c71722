package event

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/gadgetfix/model"
)

type SQL struct {
	conn *sqlx.DB
}

type EventRepository interface {
	Insert(ctx context.Context, data *model.BookingEventEntity) error
	ListByBooking(ctx context.Context, bookingID uint64) ([]model.BookingEventEntity, error)
}

func NewEventRepository(conn *sqlx.DB) EventRepository {
	return &SQL{conn: conn}
}

const (
	insertEventQuery = `INSERT INTO booking_event (booking_id, actor_id, type, repair_status, payment_status, technician_id, occurred_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	listEventsByBooking = `SELECT id, booking_id, actor_id, type, repair_status, payment_status, technician_id, occurred_at
FROM booking_event WHERE booking_id = ? ORDER BY occurred_at, id`
)

func (s *SQL) Insert(ctx context.Context, data *model.BookingEventEntity) error {
	_, err := s.conn.ExecContext(ctx, insertEventQuery, data.BookingID, data.ActorID, data.Type, data.RepairStatus,
		data.PaymentStatus, data.TechnicianID, data.OccurredAt)
	return err
}

func (s *SQL) ListByBooking(ctx context.Context, bookingID uint64) ([]model.BookingEventEntity, error) {
	events := make([]model.BookingEventEntity, 0)
	if err := s.conn.SelectContext(ctx, &events, listEventsByBooking, bookingID); err != nil {
		return nil, err
	}
	return events, nil
}
