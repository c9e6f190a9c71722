package transport

import (
	"net/http"

	"github.com/muhammadheryan/gadgetfix/constant"
	"github.com/muhammadheryan/gadgetfix/model"
	utilsContext "github.com/muhammadheryan/gadgetfix/utils/context"
	"github.com/muhammadheryan/gadgetfix/utils/errors"
)

// ListUsers handler
// @Summary List accounts
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter"
// @Success 200 {array} model.UserEntity
// @Failure 403 {object} model.ErrorResponse
// @Router /users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	role := constant.Role(r.URL.Query().Get("role"))
	if role != "" && !constant.ValidRoles[role] {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	users, err := s.UserApp.ListUsers(r.Context(), utilsContext.GetActor(r.Context()), role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, users)
}

// UpdateUser handler
// @Summary Update an account
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRequest true "Fields to change"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{id} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.UserApp.UpdateUser(r.Context(), utilsContext.GetActor(r.Context()), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.UserResponse{Message: "Updated", User: user})
}

// DeleteUser handler
// @Summary Delete an account
// @Description Hard delete; bookings and tickets of the account are kept
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.MessageResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.DeleteUser(r.Context(), utilsContext.GetActor(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "User deleted"})
}
