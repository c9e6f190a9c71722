package stats_test

import (
	"context"
	"errors"
	"testing"

	appstats "github.com/muhammadheryan/gadgetfix/application/stats"
	"github.com/muhammadheryan/gadgetfix/constant"
	bookingmocks "github.com/muhammadheryan/gadgetfix/mocks/repository/booking"
	usermocks "github.com/muhammadheryan/gadgetfix/mocks/repository/user"
	"github.com/muhammadheryan/gadgetfix/model"
	cerr "github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func row(status constant.RepairStatus, payment constant.PaymentStatus, price int64) model.BookingStatRow {
	return model.BookingStatRow{RepairStatus: status, PaymentStatus: payment, PriceEstimate: price}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		rows []model.BookingStatRow
		want *model.StatsResponse
	}{
		{
			name: "no bookings gives zero completion rate",
			rows: nil,
			want: &model.StatsResponse{},
		},
		{
			name: "revenue counts only paid bookings",
			rows: []model.BookingStatRow{
				row(constant.RepairStatusCompleted, constant.PaymentStatusPaid, 100),
				row(constant.RepairStatusInProgress, constant.PaymentStatusPaid, 250),
				row(constant.RepairStatusPending, constant.PaymentStatusPending, 500),
			},
			want: &model.StatsResponse{
				TotalBookings:     3,
				CompletedBookings: 1,
				ActiveBookings:    2,
				TotalRevenue:      350,
				CompletionRate:    1.0 / 3.0,
			},
		},
		{
			name: "one of four completed",
			rows: []model.BookingStatRow{
				row(constant.RepairStatusCompleted, constant.PaymentStatusPending, 0),
				row(constant.RepairStatusCancelled, constant.PaymentStatusRefunded, 300),
				row(constant.RepairStatusAssigned, constant.PaymentStatusPending, 0),
				row(constant.RepairStatusPending, constant.PaymentStatusPending, 0),
			},
			want: &model.StatsResponse{
				TotalBookings:     4,
				CompletedBookings: 1,
				ActiveBookings:    2,
				CompletionRate:    0.25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appstats.Summarize(tt.rows))
		})
	}
}

func TestStatsApp_GetStats(t *testing.T) {
	admin := &model.Actor{ID: 1, Role: constant.RoleAdmin}

	t.Run("success", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		bookingRepo := bookingmocks.NewBookingRepository(t)
		userRepo.On("Count", mock.Anything, &model.UserFilter{Role: constant.RoleUser}).Return(int64(12), nil).Once()
		bookingRepo.On("ListStatRows", mock.Anything).Return([]model.BookingStatRow{
			row(constant.RepairStatusCompleted, constant.PaymentStatusPaid, 100),
		}, nil).Once()

		got, err := appstats.NewStatsApp(userRepo, bookingRepo).GetStats(context.Background(), admin)
		require.NoError(t, err)
		assert.Equal(t, int64(12), got.TotalUsers)
		assert.Equal(t, int64(100), got.TotalRevenue)
		assert.Equal(t, 1.0, got.CompletionRate)
	})

	t.Run("error: technician", func(t *testing.T) {
		_, err := appstats.NewStatsApp(usermocks.NewUserRepository(t), bookingmocks.NewBookingRepository(t)).
			GetStats(context.Background(), &model.Actor{ID: 5, Role: constant.RoleTechnician})
		assert.True(t, cerr.Is(err, constant.ErrForbidden))
	})

	t.Run("error: booking scan fails", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		bookingRepo := bookingmocks.NewBookingRepository(t)
		userRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil).Once()
		bookingRepo.On("ListStatRows", mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := appstats.NewStatsApp(userRepo, bookingRepo).GetStats(context.Background(), admin)
		assert.True(t, cerr.Is(err, constant.ErrInternal))
	})
}
