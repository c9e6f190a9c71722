package transport_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/gadgetfix/cmd/config"
	"github.com/muhammadheryan/gadgetfix/constant"
	bookingmocks "github.com/muhammadheryan/gadgetfix/mocks/application/booking"
	catalogmocks "github.com/muhammadheryan/gadgetfix/mocks/application/catalog"
	sessionmocks "github.com/muhammadheryan/gadgetfix/mocks/application/session"
	statsmocks "github.com/muhammadheryan/gadgetfix/mocks/application/stats"
	ticketmocks "github.com/muhammadheryan/gadgetfix/mocks/application/ticket"
	uploadmocks "github.com/muhammadheryan/gadgetfix/mocks/application/upload"
	usermocks "github.com/muhammadheryan/gadgetfix/mocks/application/user"
	"github.com/muhammadheryan/gadgetfix/model"
	"github.com/muhammadheryan/gadgetfix/transport"
	cerr "github.com/muhammadheryan/gadgetfix/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	session *sessionmocks.SessionApp
	user    *usermocks.UserApp
	catalog *catalogmocks.CatalogApp
	booking *bookingmocks.BookingApp
	ticket  *ticketmocks.TicketApp
	stats   *statsmocks.StatsApp
	upload  *uploadmocks.UploadApp
}

func newServer(t *testing.T) (http.Handler, handlerMocks, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		Environment: "test",
		Auth: config.AuthConfig{
			JWTExpiration: 7 * 24 * time.Hour,
			CookieName:    "token",
		},
		Upload: config.UploadConfig{
			Dir:        t.TempDir(),
			PublicPath: "/uploads/",
			MaxSize:    1024,
		},
	}
	m := handlerMocks{
		session: sessionmocks.NewSessionApp(t),
		user:    usermocks.NewUserApp(t),
		catalog: catalogmocks.NewCatalogApp(t),
		booking: bookingmocks.NewBookingApp(t),
		ticket:  ticketmocks.NewTicketApp(t),
		stats:   statsmocks.NewStatsApp(t),
		upload:  uploadmocks.NewUploadApp(t),
	}
	h := transport.NewTransport(&transport.RestHandler{
		Config:     cfg,
		SessionApp: m.session,
		UserApp:    m.user,
		CatalogApp: m.catalog,
		BookingApp: m.booking,
		TicketApp:  m.ticket,
		StatsApp:   m.stats,
		UploadApp:  m.upload,
	})
	return h, m, cfg
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegister_SetsSessionCookie(t *testing.T) {
	h, m, _ := newServer(t)
	m.user.On("Register", mock.Anything, &model.RegisterRequest{
		Name: "A", Email: "a@example.com", Phone: "0811", Password: "secret1",
	}).Return(&model.AuthResponse{
		Message: "Registration successful",
		User:    model.UserSummary{ID: 10, Name: "A", Email: "a@example.com", Role: constant.RoleUser},
		Token:   "signed-token",
	}, nil).Once()

	body := `{"name":"A","email":"a@example.com","phone":"0811","password":"secret1"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "signed-token")

	cookie := findCookie(rec, "token")
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
}

func TestRegister_ValidationError(t *testing.T) {
	h, _, _ := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"A","email":"not-an-email","phone":"0811","password":"secret1"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], decodeError(t, rec).Code)
}

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	h, m, _ := newServer(t)
	m.session.On("Verify", mock.Anything, "signed-token").
		Return(&model.Actor{ID: 2, Role: constant.RoleUser}, nil).Once()
	m.user.On("Logout", mock.Anything, "signed-token").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "signed-token"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, "token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthMiddleware_ResolvesActor(t *testing.T) {
	customer := &model.Actor{ID: 2, Role: constant.RoleUser}

	tests := []struct {
		name      string
		prepare   func(req *http.Request)
		mockCall  func(m handlerMocks)
		wantActor *model.Actor
	}{
		{
			name: "cookie session",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
			},
			mockCall: func(m handlerMocks) {
				m.session.On("Verify", mock.Anything, "cookie-token").Return(customer, nil).Once()
			},
			wantActor: customer,
		},
		{
			name: "bearer fallback",
			prepare: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer header-token")
			},
			mockCall: func(m handlerMocks) {
				m.session.On("Verify", mock.Anything, "header-token").Return(customer, nil).Once()
			},
			wantActor: customer,
		},
		{
			name: "invalid token stays anonymous",
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "token", Value: "forged"})
			},
			mockCall: func(m handlerMocks) {
				m.session.On("Verify", mock.Anything, "forged").Return(nil, cerr.SetCustomError(constant.ErrUnauthorize)).Once()
			},
			wantActor: nil,
		},
		{
			name:      "no token",
			prepare:   func(*http.Request) {},
			wantActor: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, _ := newServer(t)
			if tt.mockCall != nil {
				tt.mockCall(m)
			}
			m.booking.On("ListBookings", mock.Anything, tt.wantActor, &model.ListBookingsRequest{}).
				Return([]model.BookingItem{}, nil).Once()

			req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unauthenticated",
			err:        cerr.SetCustomError(constant.ErrUnauthorize),
			wantStatus: http.StatusUnauthorized,
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name:       "forbidden",
			err:        cerr.SetCustomError(constant.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantCode:   constant.ErrorTypeCode[constant.ErrForbidden],
		},
		{
			name:       "unmapped error is internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   constant.ErrorTypeCode[constant.ErrInternal],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, _ := newServer(t)
			m.booking.On("ListBookings", mock.Anything, mock.Anything, &model.ListBookingsRequest{All: true}).
				Return(nil, tt.err).Once()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?all=true", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotContains(t, body.Message, "boom")
		})
	}
}

func TestListBookings_RejectsUnknownStatus(t *testing.T) {
	h, _, _ := newServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings?status=Lost", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBooking_PassesPathID(t *testing.T) {
	h, m, _ := newServer(t)
	completed := constant.RepairStatusCompleted
	m.booking.On("UpdateBooking", mock.Anything, mock.Anything, uint64(42), &model.UpdateBookingRequest{RepairStatus: &completed}).
		Return(&model.BookingResponse{Message: "Updated", Booking: &model.BookingEntity{ID: 42, RepairStatus: completed}}, nil).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/bookings/42", strings.NewReader(`{"repairStatus":"Completed"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var res model.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, constant.RepairStatusCompleted, res.Booking.RepairStatus)
}

func TestQuoteService_RequiresAllKeys(t *testing.T) {
	h, m, _ := newServer(t)
	key := &model.CatalogKey{DeviceCategory: "Smartphone", Brand: "Apple", Model: "iPhone 13", Issue: "Screen"}
	m.catalog.On("Quote", mock.Anything, key).
		Return(&model.CatalogItem{CatalogEntity: model.CatalogEntity{ID: 1}, EffectivePrice: 800}, nil).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/quote?category=Smartphone&brand=Apple&model=iPhone+13&issue=Screen", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"effectivePrice":800`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/quote?category=Smartphone", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	h, m, _ := newServer(t)
	m.stats.On("GetStats", mock.Anything, (*model.Actor)(nil)).
		Return(nil, cerr.SetCustomError(constant.ErrUnauthorize)).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	h, m, _ := newServer(t)
	content := []byte("\x89PNG\r\n\x1a\nrest")
	m.upload.On("UploadImage", mock.Anything, mock.Anything, mock.MatchedBy(func(req *model.UploadRequest) bool {
		return req.Filename == "me.png" && req.Size == int64(len(content))
	})).Return(&model.UploadResponse{ImageURL: "/uploads/2-x.png"}, nil).Once()

	body, contentType := multipartBody(t, "image", "me.png", content)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"imageUrl":"/uploads/2-x.png"}`, rec.Body.String())
}

func TestUploadImage_MissingField(t *testing.T) {
	h, _, _ := newServer(t)

	body, contentType := multipartBody(t, "file", "me.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServesUploadedFiles(t *testing.T) {
	h, _, cfg := newServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Upload.Dir, "2-abc.png"), []byte("png-bytes"), 0o644))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/2-abc.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestSubmitTicket(t *testing.T) {
	h, m, _ := newServer(t)
	m.ticket.On("SubmitTicket", mock.Anything, (*model.Actor)(nil), &model.CreateTicketRequest{Subject: "Late pickup", Message: "No one came"}).
		Return(&model.TicketResponse{Message: "Ticket submitted", Ticket: &model.TicketEntity{ID: 3, Status: constant.TicketStatusOpen}}, nil).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/support", strings.NewReader(`{"subject":"Late pickup","message":"No one came"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Open"`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/support", strings.NewReader(`{"subject":"Late pickup"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTicket(t *testing.T) {
	h, m, _ := newServer(t)
	m.ticket.On("UpdateTicket", mock.Anything, (*model.Actor)(nil), uint64(9), &model.UpdateTicketRequest{Status: constant.TicketStatusResolved}).
		Return(nil, cerr.SetCustomError(constant.ErrUnauthorize)).Once()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/support/9", strings.NewReader(`{"status":"Resolved"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/support/9", strings.NewReader(`{"status":"Escalated"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
