package booking

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/gadgetfix/application/policy"
	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	bookingrepo "github.com/muhammadheryan/gadgetfix/repository/booking"
	catalogrepo "github.com/muhammadheryan/gadgetfix/repository/catalog"
	eventrepo "github.com/muhammadheryan/gadgetfix/repository/event"
	txrepo "github.com/muhammadheryan/gadgetfix/repository/tx"
	userrepo "github.com/muhammadheryan/gadgetfix/repository/user"
	"github.com/muhammadheryan/gadgetfix/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/muhammadheryan/gadgetfix/utils/logger"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// EventPublisher is satisfied by *rabbitmq.Publisher.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, msg rabbitmq.BookingEventMessage) error
}

type BookingApp interface {
	CreateBooking(ctx context.Context, actor *model.Actor, req *model.CreateBookingRequest) (*model.BookingResponse, error)
	ListBookings(ctx context.Context, actor *model.Actor, req *model.ListBookingsRequest) ([]model.BookingItem, error)
	GetBooking(ctx context.Context, actor *model.Actor, id uint64) (*model.BookingEntity, error)
	UpdateBooking(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateBookingRequest) (*model.BookingResponse, error)
	CancelBooking(ctx context.Context, actor *model.Actor, id uint64) (*model.BookingResponse, error)
	ListBookingEvents(ctx context.Context, actor *model.Actor, id uint64) ([]model.BookingEventEntity, error)
}

type bookingAppImpl struct {
	txRepo      txrepo.TxRepository
	bookingRepo bookingrepo.BookingRepository
	catalogRepo catalogrepo.CatalogRepository
	userRepo    userrepo.UserRepository
	eventRepo   eventrepo.EventRepository
	publisher   EventPublisher
	now         func() time.Time
}

// NewBookingApp wires the booking engine. publisher may be nil, in which
// case lifecycle events are not emitted.
func NewBookingApp(txRepo txrepo.TxRepository, bookingRepo bookingrepo.BookingRepository, catalogRepo catalogrepo.CatalogRepository,
	userRepo userrepo.UserRepository, eventRepo eventrepo.EventRepository, publisher EventPublisher) BookingApp {
	return &bookingAppImpl{
		txRepo:      txRepo,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *bookingAppImpl) CreateBooking(ctx context.Context, actor *model.Actor, req *model.CreateBookingRequest) (*model.BookingResponse, error) {
	if err := policy.Authorize(policy.ActionCreateBooking, actor, nil); err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity := &model.BookingEntity{
		UserID:         actor.ID,
		DeviceCategory: strings.TrimSpace(req.DeviceCategory),
		Brand:          strings.TrimSpace(req.Brand),
		Model:          strings.TrimSpace(req.Model),
		IssueType:      strings.TrimSpace(req.IssueType),
		Description:    req.Description,
		Images:         model.StringList(req.Images),
		PickupAddress:  req.PickupAddress,
		Date:           date,
		TimeSlot:       req.TimeSlot,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  constant.PaymentStatusPending,
		RepairStatus:   constant.RepairStatusPending,
	}
	if req.PriceEstimate != nil {
		entity.PriceEstimate = *req.PriceEstimate
	}

	// The catalog price wins over whatever the client sent.
	entry, err := s.catalogRepo.GetByKey(ctx, &model.CatalogKey{
		DeviceCategory: entity.DeviceCategory,
		Brand:          entity.Brand,
		Model:          entity.Model,
		Issue:          entity.IssueType,
	})
	if err != nil {
		logger.Error("[CreateBooking] error catalogRepo.GetByKey", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entry != nil && entry.Active {
		entity.PriceEstimate = entry.EffectivePrice()
	}

	created, err := s.bookingRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateBooking] error bookingRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, actor, constant.BookingEventCreated, created)

	return &model.BookingResponse{Message: "Booking created", Booking: created}, nil
}

func (s *bookingAppImpl) ListBookings(ctx context.Context, actor *model.Actor, req *model.ListBookingsRequest) ([]model.BookingItem, error) {
	filter := &model.BookingFilter{RepairStatus: req.RepairStatus}
	switch {
	case req.All:
		if err := policy.Authorize(policy.ActionListAllBookings, actor, nil); err != nil {
			return nil, err
		}
	case actor.IsAdmin():
	default:
		if err := policy.Authorize(policy.ActionListOwnBookings, actor, nil); err != nil {
			return nil, err
		}
		filter.UserID = actor.ID
	}

	rows, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListBookings] error bookingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.BookingItem, 0, len(rows))
	for i := range rows {
		items = append(items, model.NewBookingItem(&rows[i]))
	}
	return items, nil
}

func (s *bookingAppImpl) GetBooking(ctx context.Context, actor *model.Actor, id uint64) (*model.BookingEntity, error) {
	return s.getAuthorized(ctx, "GetBooking", policy.ActionViewBooking, actor, id)
}

// UpdateBooking applies any subset of repair status, payment status and
// technician. No transition graph is enforced beyond the enums.
func (s *bookingAppImpl) UpdateBooking(ctx context.Context, actor *model.Actor, id uint64, req *model.UpdateBookingRequest) (*model.BookingResponse, error) {
	if err := policy.Authorize(policy.ActionTransitionBooking, actor, nil); err != nil {
		return nil, err
	}

	if req.TechnicianID != nil {
		tech, err := s.userRepo.Get(ctx, &model.UserFilter{ID: *req.TechnicianID})
		if err != nil {
			logger.Error("[UpdateBooking] error userRepo.Get", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if tech == nil || tech.Role != constant.RoleTechnician {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateBooking] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.bookingRepo.GetByIDForUpdateTx(ctx, tx, id)
	if err != nil {
		logger.Error("[UpdateBooking] error bookingRepo.GetByIDForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	updated := existing
	if !req.IsEmpty() {
		if err := s.bookingRepo.UpdateTx(ctx, tx, id, req); err != nil {
			logger.Error("[UpdateBooking] error bookingRepo.UpdateTx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		updated, err = s.bookingRepo.GetByIDForUpdateTx(ctx, tx, id)
		if err != nil || updated == nil {
			logger.Error("[UpdateBooking] error reading booking back", zap.Uint64("booking_id", id), zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateBooking] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if !req.IsEmpty() {
		s.publish(ctx, actor, constant.BookingEventUpdated, updated)
	}

	return &model.BookingResponse{Message: "Updated", Booking: updated}, nil
}

// CancelBooking is allowed for administrators at any time and for the owner
// while the order is not yet Completed or Cancelled.
func (s *bookingAppImpl) CancelBooking(ctx context.Context, actor *model.Actor, id uint64) (*model.BookingResponse, error) {
	existing, err := s.getAuthorized(ctx, "CancelBooking", policy.ActionCancelBooking, actor, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateRepairStatus(ctx, id, constant.RepairStatusCancelled); err != nil {
		logger.Error("[CancelBooking] error bookingRepo.UpdateRepairStatus", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	existing.RepairStatus = constant.RepairStatusCancelled

	s.publish(ctx, actor, constant.BookingEventCancelled, existing)

	return &model.BookingResponse{Message: "Booking cancelled", Booking: existing}, nil
}

func (s *bookingAppImpl) ListBookingEvents(ctx context.Context, actor *model.Actor, id uint64) ([]model.BookingEventEntity, error) {
	if _, err := s.getAuthorized(ctx, "ListBookingEvents", policy.ActionViewBooking, actor, id); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByBooking(ctx, id)
	if err != nil {
		logger.Error("[ListBookingEvents] error eventRepo.ListByBooking", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return events, nil
}

// getAuthorized loads a booking and checks action against it. Anonymous
// callers are rejected before the lookup so they cannot probe ids.
func (s *bookingAppImpl) getAuthorized(ctx context.Context, op string, action policy.Action, actor *model.Actor, id uint64) (*model.BookingEntity, error) {
	if actor == nil || actor.ID == 0 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+op+"] error bookingRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if booking == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	res := &policy.Resource{OwnerID: booking.UserID, RepairStatus: booking.RepairStatus}
	if err := policy.Authorize(action, actor, res); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingAppImpl) publish(ctx context.Context, actor *model.Actor, eventType constant.BookingEventType, b *model.BookingEntity) {
	if s.publisher == nil {
		return
	}

	msg := rabbitmq.BookingEventMessage{
		BookingID:     b.ID,
		ActorID:       actor.ID,
		Type:          eventType,
		RepairStatus:  b.RepairStatus,
		PaymentStatus: b.PaymentStatus,
		TechnicianID:  b.TechnicianID,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishBookingEvent(ctx, msg); err != nil {
		logger.Error("[publish] failed to publish booking event",
			zap.Uint64("booking_id", b.ID), zap.String("type", string(eventType)), zap.String("error", err.Error()))
	}
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
