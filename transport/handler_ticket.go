package transport

import (
	"net/http"

	"github.com/muhammadheryan/gadgetfix/model"
	utilsContext "github.com/muhammadheryan/gadgetfix/utils/context"
)

// ListTickets handler
// @Summary List support tickets
// @Description Every ticket for an administrator, own tickets otherwise
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TicketRow
// @Failure 401 {object} model.ErrorResponse
// @Router /support [get]
func (s *RestHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.TicketApp.ListTickets(r.Context(), utilsContext.GetActor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, tickets)
}

// SubmitTicket handler
// @Summary Submit a support ticket
// @Tags Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateTicketRequest true "Ticket"
// @Success 201 {object} model.TicketResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /support [post]
func (s *RestHandler) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TicketApp.SubmitTicket(r.Context(), utilsContext.GetActor(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// UpdateTicket handler
// @Summary Update ticket status
// @Tags Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body model.UpdateTicketRequest true "New status"
// @Success 200 {object} model.TicketResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /support/{id} [patch]
func (s *RestHandler) UpdateTicket(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TicketApp.UpdateTicket(r.Context(), utilsContext.GetActor(r.Context()), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
