package ticket

import (
	"context"
	"strings"

	"github.com/muhammadheryan/gadgetfix/application/policy"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	ticketrepo "github.com/muhammadheryan/gadgetfix/repository/ticket"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

type TicketApp interface {
	SubmitTicket(ctx context.Context, actor *model.Actor, req *model.CreateTicketRequest) (*model.TicketResponse, error)
	ListTickets(ctx context.Context, actor *model.Actor) ([]model.TicketRow, error)
	UpdateTicket(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateTicketRequest) (*model.TicketResponse, error)
}

type ticketAppImpl struct {
	ticketRepo ticketrepo.TicketRepository
}

func NewTicketApp(ticketRepo ticketrepo.TicketRepository) TicketApp {
	return &ticketAppImpl{ticketRepo: ticketRepo}
}

func (s *ticketAppImpl) SubmitTicket(ctx context.Context, actor *model.Actor, req *model.CreateTicketRequest) (*model.TicketResponse, error) {
	if err := policy.Authorize(policy.ActionSubmitTicket, actor, nil); err != nil {
		return nil, err
	}

	subject, message := strings.TrimSpace(req.Subject), strings.TrimSpace(req.Message)
	if subject == "" || message == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	created, err := s.ticketRepo.Create(ctx, &model.TicketEntity{
		UserID:  actor.ID,
		Subject: subject,
		Message: message,
		Status:  constant.TicketStatusOpen,
	})
	if err != nil {
		logger.Error("[SubmitTicket] error ticketRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.TicketResponse{Message: "Ticket submitted", Ticket: created}, nil
}

// ListTickets returns every ticket to administrators and the caller's own
// tickets to anyone else.
func (s *ticketAppImpl) ListTickets(ctx context.Context, actor *model.Actor) ([]model.TicketRow, error) {
	filter := &model.TicketFilter{}
	if actor.IsAdmin() {
		if err := policy.Authorize(policy.ActionListAllTickets, actor, nil); err != nil {
			return nil, err
		}
	} else {
		if err := policy.Authorize(policy.ActionListOwnTickets, actor, nil); err != nil {
			return nil, err
		}
		filter.UserID = actor.ID
	}

	rows, err := s.ticketRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListTickets] error ticketRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func (s *ticketAppImpl) UpdateTicket(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateTicketRequest) (*model.TicketResponse, error) {
	if err := policy.Authorize(policy.ActionUpdateTicket, actor, nil); err != nil {
		return nil, err
	}
	if !constant.ValidTicketStatuses[req.Status] {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	existing, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateTicket] error ticketRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.ticketRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		logger.Error("[UpdateTicket] error ticketRepo.UpdateStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	existing.Status = req.Status

	return &model.TicketResponse{Message: "Updated", Ticket: existing}, nil
}
