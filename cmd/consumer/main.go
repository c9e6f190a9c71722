package main

import (
	"context"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/gadgetfix/cmd/config"
	"github.com/muhammadheryan/gadgetfix/model"
	eventRepo "github.com/muhammadheryan/gadgetfix/repository/event"
	"github.com/muhammadheryan/gadgetfix/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

// The consumer records every booking lifecycle event published by the API
// into the booking_event table, which backs GET /bookings/{id}/events.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "gadgetfix-consumer"); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	EventRepo := eventRepo.NewEventRepository(db)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		func(ctx context.Context, msg rabbitmq.BookingEventMessage) error {
			return EventRepo.Insert(ctx, &model.BookingEventEntity{
				BookingID:     msg.BookingID,
				ActorID:       msg.ActorID,
				Type:          msg.Type,
				RepairStatus:  msg.RepairStatus,
				PaymentStatus: msg.PaymentStatus,
				TechnicianID:  msg.TechnicianID,
				OccurredAt:    msg.OccurredAt,
			})
		})
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Booking event consumer running", zap.String("queue", rabbitmq.BookingEventQueue))
	select {
	case <-ctx.Done():
	case <-done:
		logger.Warn("delivery channel closed")
	}
	logger.Info("Consumer stopped")
}
