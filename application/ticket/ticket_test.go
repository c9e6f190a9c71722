package ticket_test

import (
	"context"
	"errors"
	"testing"

	appticket "github.com/muhammadheryan/gadgetfix/application/ticket"
	"github.com/muhammadheryan/gadgetfix/constant"
	ticketmocks "github.com/muhammadheryan/gadgetfix/mocks/repository/ticket"
	"github.com/muhammadheryan/gadgetfix/model"
	cerr "github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminActor    = &model.Actor{ID: 1, Role: constant.RoleAdmin}
	customerActor = &model.Actor{ID: 2, Role: constant.RoleUser}
)

func TestTicketApp_SubmitTicket(t *testing.T) {
	tests := []struct {
		name     string
		actor    *model.Actor
		req      *model.CreateTicketRequest
		mockCall func(repo *ticketmocks.TicketRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: ticket opens for submitter",
			actor: customerActor,
			req:   &model.CreateTicketRequest{Subject: " Late pickup ", Message: "Courier never came"},
			mockCall: func(repo *ticketmocks.TicketRepository) {
				repo.On("Create", mock.Anything, &model.TicketEntity{
					UserID:  2,
					Subject: "Late pickup",
					Message: "Courier never came",
					Status:  constant.TicketStatusOpen,
				}).Return(&model.TicketEntity{ID: 4, UserID: 2, Status: constant.TicketStatusOpen}, nil).Once()
			},
		},
		{
			name:    "error: blank message",
			actor:   customerActor,
			req:     &model.CreateTicketRequest{Subject: "Hi", Message: "   "},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: anonymous",
			req:     &model.CreateTicketRequest{Subject: "Hi", Message: "there"},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name:  "error: store failure",
			actor: customerActor,
			req:   &model.CreateTicketRequest{Subject: "Hi", Message: "there"},
			mockCall: func(repo *ticketmocks.TicketRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := ticketmocks.NewTicketRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			got, err := appticket.NewTicketApp(repo).SubmitTicket(context.Background(), tt.actor, tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.TicketStatusOpen, got.Ticket.Status)
		})
	}
}

func TestTicketApp_ListTickets(t *testing.T) {
	t.Run("success: admin sees all", func(t *testing.T) {
		repo := ticketmocks.NewTicketRepository(t)
		repo.On("List", mock.Anything, &model.TicketFilter{}).
			Return([]model.TicketRow{{TicketEntity: model.TicketEntity{ID: 1}}, {TicketEntity: model.TicketEntity{ID: 2}}}, nil).Once()

		got, err := appticket.NewTicketApp(repo).ListTickets(context.Background(), adminActor)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("success: customer sees own", func(t *testing.T) {
		repo := ticketmocks.NewTicketRepository(t)
		repo.On("List", mock.Anything, &model.TicketFilter{UserID: 2}).
			Return([]model.TicketRow{{TicketEntity: model.TicketEntity{ID: 1, UserID: 2}}}, nil).Once()

		got, err := appticket.NewTicketApp(repo).ListTickets(context.Background(), customerActor)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("error: anonymous", func(t *testing.T) {
		repo := ticketmocks.NewTicketRepository(t)
		_, err := appticket.NewTicketApp(repo).ListTickets(context.Background(), nil)
		assert.True(t, cerr.Is(err, constant.ErrUnauthorize))
	})
}

func TestTicketApp_UpdateTicket(t *testing.T) {
	tests := []struct {
		name     string
		actor    *model.Actor
		req      *model.UpdateTicketRequest
		mockCall func(repo *ticketmocks.TicketRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: admin resolves ticket",
			actor: adminActor,
			req:   &model.UpdateTicketRequest{Status: constant.TicketStatusResolved},
			mockCall: func(repo *ticketmocks.TicketRepository) {
				repo.On("GetByID", mock.Anything, uint64(4)).
					Return(&model.TicketEntity{ID: 4, Status: constant.TicketStatusOpen}, nil).Once()
				repo.On("UpdateStatus", mock.Anything, uint64(4), constant.TicketStatusResolved).Return(nil).Once()
			},
		},
		{
			name:    "error: customer cannot update",
			actor:   customerActor,
			req:     &model.UpdateTicketRequest{Status: constant.TicketStatusClosed},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: unknown status",
			actor:   adminActor,
			req:     &model.UpdateTicketRequest{Status: "Escalated"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: not found",
			actor: adminActor,
			req:   &model.UpdateTicketRequest{Status: constant.TicketStatusClosed},
			mockCall: func(repo *ticketmocks.TicketRepository) {
				repo.On("GetByID", mock.Anything, uint64(4)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := ticketmocks.NewTicketRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			got, err := appticket.NewTicketApp(repo).UpdateTicket(context.Background(), tt.actor, 4, tt.req)
			if tt.wantErr {
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Status, got.Ticket.Status)
		})
	}
}
