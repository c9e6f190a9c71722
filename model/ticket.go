package model

import (
	"time"

	"github.com/muhammadheryan/gadgetfix/constant"
)

type TicketEntity struct {
	ID        uint64                `db:"id" json:"id"`
	UserID    uint64                `db:"user_id" json:"userId"`
	Subject   string                `db:"subject" json:"subject"`
	Message   string                `db:"message" json:"message"`
	Status    constant.TicketStatus `db:"status" json:"status"`
	CreatedAt time.Time             `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time            `db:"updated_at" json:"updatedAt,omitempty"`
}

// TicketRow joins a ticket with its submitter.
type TicketRow struct {
	TicketEntity
	SubmitterName  *string `db:"submitter_name" json:"submitterName,omitempty"`
	SubmitterEmail *string `db:"submitter_email" json:"submitterEmail,omitempty"`
}

type TicketFilter struct {
	UserID uint64
}

type CreateTicketRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type UpdateTicketRequest struct {
	Status constant.TicketStatus `json:"status" validate:"required,ticket_status"`
}

type TicketResponse struct {
	Message string        `json:"message"`
	Ticket  *TicketEntity `json:"ticket"`
}
