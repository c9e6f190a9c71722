package stats

import (
	"context"

	"github.com/muhammadheryan/gadgetfix/application/policy"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	bookingrepo "github.com/muhammadheryan/gadgetfix/repository/booking"
	userrepo "github.com/muhammadheryan/gadgetfix/repository/user"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

type StatsApp interface {
	GetStats(ctx context.Context, actor *model.Actor) (*model.StatsResponse, error)
}

type statsAppImpl struct {
	userRepo    userrepo.UserRepository
	bookingRepo bookingrepo.BookingRepository
}

func NewStatsApp(userRepo userrepo.UserRepository, bookingRepo bookingrepo.BookingRepository) StatsApp {
	return &statsAppImpl{userRepo: userRepo, bookingRepo: bookingRepo}
}

// GetStats is computed on every call; nothing is cached.
func (s *statsAppImpl) GetStats(ctx context.Context, actor *model.Actor) (*model.StatsResponse, error) {
	if err := policy.Authorize(policy.ActionViewStats, actor, nil); err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.Count(ctx, &model.UserFilter{Role: constant.RoleUser})
	if err != nil {
		logger.Error("[GetStats] error userRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows, err := s.bookingRepo.ListStatRows(ctx)
	if err != nil {
		logger.Error("[GetStats] error bookingRepo.ListStatRows", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := Summarize(rows)
	res.TotalUsers = totalUsers
	return res, nil
}

// Summarize folds booking rows into the booking part of the report.
func Summarize(rows []model.BookingStatRow) *model.StatsResponse {
	res := &model.StatsResponse{TotalBookings: int64(len(rows))}
	for _, row := range rows {
		if row.RepairStatus == constant.RepairStatusCompleted {
			res.CompletedBookings++
		}
		if row.RepairStatus.IsActive() {
			res.ActiveBookings++
		}
		if row.PaymentStatus == constant.PaymentStatusPaid {
			res.TotalRevenue += row.PriceEstimate
		}
	}
	if res.TotalBookings > 0 {
		res.CompletionRate = float64(res.CompletedBookings) / float64(res.TotalBookings)
	}
	return res
}
