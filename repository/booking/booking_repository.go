package booking

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
)

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.BookingEntity, error)
	List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingRow, error)
	UpdateRepairStatus(ctx context.Context, id uint64, status constant.RepairStatus) error
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.BookingEntity, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdateBookingRequest) error
	ListStatRows(ctx context.Context) ([]model.BookingStatRow, error)
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

const (
	bookingColumns = `b.id, b.user_id, b.device_category, b.brand, b.model, b.issue_type, b.description, b.images,
b.pickup_address, b.date, b.time_slot, b.price_estimate, b.payment_method, b.payment_status, b.repair_status,
b.technician_id, b.created_at, b.updated_at`

	insertBookingQuery = "INSERT INTO booking (user_id, device_category, brand, model, issue_type, description, images, " +
		"pickup_address, date, time_slot, price_estimate, payment_method, payment_status, repair_status, created_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())"

	getBookingByID = `SELECT ` + bookingColumns + ` FROM booking b WHERE b.id = ?`

	listBookingBase = `SELECT ` + bookingColumns + `, u.name AS owner_name, u.email AS owner_email, u.phone AS owner_phone
FROM booking b
LEFT JOIN user u ON u.id = b.user_id
WHERE true`

	updateRepairStatusQuery = `UPDATE booking SET repair_status = ?, updated_at = NOW() WHERE id = ?`

	listStatRowsQuery = `SELECT repair_status, payment_status, price_estimate FROM booking`
)

func (r *SQL) Create(ctx context.Context, data *model.BookingEntity) (*model.BookingEntity, error) {
	res, err := r.conn.ExecContext(ctx, insertBookingQuery, data.UserID, data.DeviceCategory, data.Brand, data.Model,
		data.IssueType, data.Description, data.Images, data.PickupAddress, data.Date, data.TimeSlot,
		data.PriceEstimate, data.PaymentMethod, data.PaymentStatus, data.RepairStatus)
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

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.BookingEntity, error) {
	var detail model.BookingEntity
	if err := r.conn.QueryRowxContext(ctx, getBookingByID, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) List(ctx context.Context, filter *model.BookingFilter) ([]model.BookingRow, error) {
	query := listBookingBase
	args := make([]any, 0, 2)

	if filter != nil {
		if filter.UserID != 0 {
			query += " AND b.user_id = ?"
			args = append(args, filter.UserID)
		}
		if filter.RepairStatus != "" {
			query += " AND b.repair_status = ?"
			args = append(args, filter.RepairStatus)
		}
	}
	query += " ORDER BY b.created_at DESC, b.id DESC"

	rows := make([]model.BookingRow, 0)
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQL) UpdateRepairStatus(ctx context.Context, id uint64, status constant.RepairStatus) error {
	_, err := r.conn.ExecContext(ctx, updateRepairStatusQuery, status, id)
	return err
}

func (r *SQL) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.BookingEntity, error) {
	var detail model.BookingEntity
	if err := tx.QueryRowxContext(ctx, getBookingByID+" FOR UPDATE", id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, req *model.UpdateBookingRequest) error {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if req.RepairStatus != nil {
		sets = append(sets, "repair_status = ?")
		args = append(args, *req.RepairStatus)
	}
	if req.PaymentStatus != nil {
		sets = append(sets, "payment_status = ?")
		args = append(args, *req.PaymentStatus)
	}
	if req.TechnicianID != nil {
		sets = append(sets, "technician_id = ?")
		args = append(args, *req.TechnicianID)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	_, err := tx.ExecContext(ctx, "UPDATE booking SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (r *SQL) ListStatRows(ctx context.Context) ([]model.BookingStatRow, error) {
	rows, err := r.conn.QueryxContext(ctx, listStatRowsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BookingStatRow, 0)
	for rows.Next() {
		var it model.BookingStatRow
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
