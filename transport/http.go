package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	bookingapp "github.com/muhammadheryan/gadgetfix/application/booking"
	catalogapp "github.com/muhammadheryan/gadgetfix/application/catalog"
	"github.com/muhammadheryan/gadgetfix/application/session"
	statsapp "github.com/muhammadheryan/gadgetfix/application/stats"
	ticketapp "github.com/muhammadheryan/gadgetfix/application/ticket"
	uploadapp "github.com/muhammadheryan/gadgetfix/application/upload"
	userapp "github.com/muhammadheryan/gadgetfix/application/user"
	"github.com/muhammadheryan/gadgetfix/cmd/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config     *config.Config
	SessionApp session.SessionApp
	UserApp    userapp.UserApp
	CatalogApp catalogapp.CatalogApp
	BookingApp bookingapp.BookingApp
	TicketApp  ticketapp.TicketApp
	StatsApp   statsapp.StatsApp
	UploadApp  uploadapp.UploadApp
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Uploaded images
	uploads := rh.Config.Upload.PublicPath
	mux.PathPrefix(uploads).Handler(http.StripPrefix(uploads, http.FileServer(http.Dir(rh.Config.Upload.Dir)))).
		Methods(http.MethodGet)

	// Auth
	mux.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/auth/me", rh.Me).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPatch)

	// Catalog
	mux.HandleFunc("/services", rh.ListServices).Methods(http.MethodGet)
	mux.HandleFunc("/services", rh.CreateService).Methods(http.MethodPost)
	mux.HandleFunc("/services/quote", rh.QuoteService).Methods(http.MethodGet)
	mux.HandleFunc("/services/import", rh.ImportServices).Methods(http.MethodPost)
	mux.HandleFunc("/services/{id:[0-9]+}", rh.UpdateService).Methods(http.MethodPatch)
	mux.HandleFunc("/services/{id:[0-9]+}", rh.DeleteService).Methods(http.MethodDelete)

	// Bookings
	mux.HandleFunc("/bookings", rh.ListBookings).Methods(http.MethodGet)
	mux.HandleFunc("/bookings", rh.CreateBooking).Methods(http.MethodPost)
	mux.HandleFunc("/bookings/{id:[0-9]+}", rh.GetBooking).Methods(http.MethodGet)
	mux.HandleFunc("/bookings/{id:[0-9]+}", rh.UpdateBooking).Methods(http.MethodPatch)
	mux.HandleFunc("/bookings/{id:[0-9]+}", rh.CancelBooking).Methods(http.MethodDelete)
	mux.HandleFunc("/bookings/{id:[0-9]+}/events", rh.ListBookingEvents).Methods(http.MethodGet)

	// Users
	mux.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	mux.HandleFunc("/users/{id:[0-9]+}", rh.UpdateUser).Methods(http.MethodPatch)
	mux.HandleFunc("/users/{id:[0-9]+}", rh.DeleteUser).Methods(http.MethodDelete)

	// Support
	mux.HandleFunc("/support", rh.ListTickets).Methods(http.MethodGet)
	mux.HandleFunc("/support", rh.SubmitTicket).Methods(http.MethodPost)
	mux.HandleFunc("/support/{id:[0-9]+}", rh.UpdateTicket).Methods(http.MethodPatch)

	mux.HandleFunc("/upload", rh.UploadImage).Methods(http.MethodPost)
	mux.HandleFunc("/admin/stats", rh.GetStats).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.SessionApp, rh.Config.Auth.CookieName))
	mux.Use(actorRecorder())

	return mux
}
