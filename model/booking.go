package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/gadgetfix/constant"
)

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

// BookingEntity is a customer's repair order.
type BookingEntity struct {
	ID             uint64                 `db:"id" json:"id"`
	UserID         uint64                 `db:"user_id" json:"userId"`
	DeviceCategory string                 `db:"device_category" json:"deviceCategory"`
	Brand          string                 `db:"brand" json:"brand"`
	Model          string                 `db:"model" json:"model"`
	IssueType      string                 `db:"issue_type" json:"issueType"`
	Description    string                 `db:"description" json:"description"`
	Images         StringList             `db:"images" json:"images"`
	PickupAddress  string                 `db:"pickup_address" json:"pickupAddress"`
	Date           time.Time              `db:"date" json:"date"`
	TimeSlot       string                 `db:"time_slot" json:"timeSlot"`
	PriceEstimate  int64                  `db:"price_estimate" json:"priceEstimate"`
	PaymentMethod  constant.PaymentMethod `db:"payment_method" json:"paymentMethod"`
	PaymentStatus  constant.PaymentStatus `db:"payment_status" json:"paymentStatus"`
	RepairStatus   constant.RepairStatus  `db:"repair_status" json:"repairStatus"`
	TechnicianID   *uint64                `db:"technician_id" json:"technicianId,omitempty"`
	CreatedAt      time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt      *time.Time             `db:"updated_at" json:"updatedAt,omitempty"`
}

// OwnerSummary is the display part of a booking owner.
type OwnerSummary struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingRow is a booking joined with its owner; owner columns are NULL
// once the account has been deleted.
type BookingRow struct {
	BookingEntity
	OwnerName  *string `db:"owner_name"`
	OwnerEmail *string `db:"owner_email"`
	OwnerPhone *string `db:"owner_phone"`
}

// BookingItem is a booking as rendered to clients.
type BookingItem struct {
	BookingEntity
	Owner *OwnerSummary `json:"owner,omitempty"`
}

func NewBookingItem(row *BookingRow) BookingItem {
	item := BookingItem{BookingEntity: row.BookingEntity}
	if row.OwnerName != nil {
		item.Owner = &OwnerSummary{ID: row.UserID, Name: *row.OwnerName}
		if row.OwnerEmail != nil {
			item.Owner.Email = *row.OwnerEmail
		}
		if row.OwnerPhone != nil {
			item.Owner.Phone = *row.OwnerPhone
		}
	}
	return item
}

type BookingFilter struct {
	UserID       uint64
	RepairStatus constant.RepairStatus
}

// ListBookingsRequest comes from the query string.
type ListBookingsRequest struct {
	All          bool
	RepairStatus constant.RepairStatus `validate:"omitempty,repair_status"`
}

type CreateBookingRequest struct {
	DeviceCategory string                 `json:"deviceCategory" validate:"required"`
	Brand          string                 `json:"brand" validate:"required"`
	Model          string                 `json:"model" validate:"required"`
	IssueType      string                 `json:"issueType" validate:"required"`
	Description    string                 `json:"description"`
	Images         []string               `json:"images"`
	PickupAddress  string                 `json:"pickupAddress" validate:"required"`
	Date           string                 `json:"date" validate:"required"`
	TimeSlot       string                 `json:"timeSlot" validate:"required"`
	PaymentMethod  constant.PaymentMethod `json:"paymentMethod" validate:"required,payment_method"`
	PriceEstimate  *int64                 `json:"priceEstimate" validate:"omitempty,gte=0"`
}

// UpdateBookingRequest is the administrator patch; any subset may be set.
type UpdateBookingRequest struct {
	RepairStatus  *constant.RepairStatus  `json:"repairStatus" validate:"omitempty,repair_status"`
	PaymentStatus *constant.PaymentStatus `json:"paymentStatus" validate:"omitempty,payment_status"`
	TechnicianID  *uint64                 `json:"technicianId"`
}

func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.RepairStatus == nil && r.PaymentStatus == nil && r.TechnicianID == nil
}

type BookingResponse struct {
	Message string         `json:"message"`
	Booking *BookingEntity `json:"booking"`
}

// BookingStatRow is the slice of a booking the stats report needs.
type BookingStatRow struct {
	RepairStatus  constant.RepairStatus  `db:"repair_status"`
	PaymentStatus constant.PaymentStatus `db:"payment_status"`
	PriceEstimate int64                  `db:"price_estimate"`
}

// BookingEventEntity records one lifecycle change of a booking.
type BookingEventEntity struct {
	ID            uint64                    `db:"id" json:"id"`
	BookingID     uint64                    `db:"booking_id" json:"bookingId"`
	ActorID       uint64                    `db:"actor_id" json:"actorId"`
	Type          constant.BookingEventType `db:"type" json:"type"`
	RepairStatus  constant.RepairStatus     `db:"repair_status" json:"repairStatus"`
	PaymentStatus constant.PaymentStatus    `db:"payment_status" json:"paymentStatus"`
	TechnicianID  *uint64                   `db:"technician_id" json:"technicianId,omitempty"`
	OccurredAt    time.Time                 `db:"occurred_at" json:"occurredAt"`
}
