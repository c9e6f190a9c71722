package transport

import (
	"net/http"

	"github.com/muhammadheryan/gadgetfix/model"
	utilsContext "github.com/muhammadheryan/gadgetfix/utils/context"
)

func (s *RestHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Config.Auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.Config.Auth.JWTExpiration.Seconds()),
		HttpOnly: true,
		Secure:   s.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *RestHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Config.Auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// Register handler
// @Summary Register user
// @Description Register a new customer account and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSessionCookie(w, res.Token)
	writeJSON(w, http.StatusCreated, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone; the session is returned as an HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSessionCookie(w, res.Token)
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Revoke the current session and clear the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r, s.Config.Auth.CookieName); token != "" {
		if err := s.UserApp.Logout(r.Context(), token); err != nil {
			writeError(w, err)
			return
		}
	}

	s.clearSessionCookie(w)
	writeSuccess(w, model.MessageResponse{Message: "Logged out"})
}

// Me handler
// @Summary Current account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := s.UserApp.Me(r.Context(), utilsContext.GetActor(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.UserResponse{User: user})
}

// UpdateProfile handler
// @Summary Update own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /profile [patch]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.UserApp.UpdateProfile(r.Context(), utilsContext.GetActor(r.Context()), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.UserResponse{Message: "Profile updated", User: user})
}
