package transport

import (
	"net/http"

	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	utilsContext "github.com/muhammadheryan/gadgetfix/utils/context"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
	validatorx "github.com/muhammadheryan/gadgetfix/utils/validator"
)

// ListBookings handler
// @Summary List bookings
// @Description Own bookings, or every booking for an administrator
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param all query bool false "All bookings (admin only)"
// @Param status query string false "Repair status filter"
// @Success 200 {array} model.BookingItem
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /bookings [get]
func (s *RestHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := model.ListBookingsRequest{
		All:          q.Get("all") == "true",
		RepairStatus: constant.RepairStatus(q.Get("status")),
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	items, err := s.BookingApp.ListBookings(r.Context(), utilsContext.GetActor(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, items)
}

// CreateBooking handler
// @Summary Create a repair booking
// @Description Starts in Pending; the price comes from the catalog when a matching active entry exists
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateBookingRequest true "Booking"
// @Success 201 {object} model.BookingResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /bookings [post]
func (s *RestHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.CreateBooking(r.Context(), utilsContext.GetActor(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// GetBooking handler
// @Summary Get a booking
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} model.BookingEntity
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /bookings/{id} [get]
func (s *RestHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := s.BookingApp.GetBooking(r.Context(), utilsContext.GetActor(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, booking)
}

// UpdateBooking handler
// @Summary Update booking status
// @Description Administrator sets any of repairStatus, paymentStatus, technicianId
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body model.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} model.BookingResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /bookings/{id} [patch]
func (s *RestHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.UpdateBooking(r.Context(), utilsContext.GetActor(r.Context()), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelBooking handler
// @Summary Cancel a booking
// @Description Owner while the booking is open, or an administrator
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} model.BookingResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /bookings/{id} [delete]
func (s *RestHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.CancelBooking(r.Context(), utilsContext.GetActor(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListBookingEvents handler
// @Summary Booking status history
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {array} model.BookingEventEntity
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /bookings/{id}/events [get]
func (s *RestHandler) ListBookingEvents(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	events, err := s.BookingApp.ListBookingEvents(r.Context(), utilsContext.GetActor(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, events)
}
