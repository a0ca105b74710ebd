package http

import (
	"net/http"

	"rhu-patient-portal/internal/delivery/http/handler"
	"rhu-patient-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	appointmentHandler  *handler.AppointmentHandler
	consultationHandler *handler.ConsultationHandler
	certificateHandler  *handler.CertificateHandler
	recordHandler       *handler.RecordHandler
	notificationHandler *handler.NotificationHandler
	dashboardHandler    *handler.DashboardHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	appointmentHandler *handler.AppointmentHandler,
	consultationHandler *handler.ConsultationHandler,
	certificateHandler *handler.CertificateHandler,
	recordHandler *handler.RecordHandler,
	notificationHandler *handler.NotificationHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		appointmentHandler:  appointmentHandler,
		consultationHandler: consultationHandler,
		certificateHandler:  certificateHandler,
		recordHandler:       recordHandler,
		notificationHandler: notificationHandler,
		dashboardHandler:    dashboardHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Public certificate verification (linked from the QR code)
	api.HandleFunc("/certificates/verify/{number}", r.certificateHandler.Verify).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Patient portal routes (protected - patient only)
	portal := api.PathPrefix("").Subrouter()
	portal.Use(r.authMiddleware.Authenticate)
	portal.Use(middleware.RequirePatient)

	portal.HandleFunc("/dashboard", r.dashboardHandler.Get).Methods(http.MethodGet)

	portal.HandleFunc("/profile", r.profileHandler.Get).Methods(http.MethodGet)
	portal.HandleFunc("/profile", r.profileHandler.Update).Methods(http.MethodPut)
	portal.HandleFunc("/profile/activity", r.profileHandler.ListActivity).Methods(http.MethodGet)

	portal.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	portal.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	portal.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	portal.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	portal.HandleFunc("/consultations", r.consultationHandler.List).Methods(http.MethodGet)
	portal.HandleFunc("/consultations", r.consultationHandler.Request).Methods(http.MethodPost)
	portal.HandleFunc("/consultations/{id}", r.consultationHandler.Get).Methods(http.MethodGet)
	portal.HandleFunc("/consultations/{id}/cancel", r.consultationHandler.Cancel).Methods(http.MethodPost)

	portal.HandleFunc("/certificates", r.certificateHandler.List).Methods(http.MethodGet)
	portal.HandleFunc("/certificates", r.certificateHandler.Request).Methods(http.MethodPost)
	portal.HandleFunc("/certificates/{id:[0-9]+}", r.certificateHandler.Get).Methods(http.MethodGet)
	portal.HandleFunc("/certificates/{id:[0-9]+}/download", r.certificateHandler.Download).Methods(http.MethodGet)

	portal.HandleFunc("/records", r.recordHandler.GetHealthRecord).Methods(http.MethodGet)
	portal.HandleFunc("/records/laboratory-results", r.recordHandler.ListLaboratoryResults).Methods(http.MethodGet)
	portal.HandleFunc("/records/prescriptions", r.recordHandler.ListPrescriptions).Methods(http.MethodGet)
	portal.HandleFunc("/records/referrals", r.recordHandler.ListReferrals).Methods(http.MethodGet)

	portal.HandleFunc("/notifications", r.notificationHandler.List).Methods(http.MethodGet)
	portal.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPost)
	portal.HandleFunc("/notifications/read-all", r.notificationHandler.MarkAllRead).Methods(http.MethodPost)

	// Lookup routes (protected, any role)
	lookups := api.PathPrefix("").Subrouter()
	lookups.Use(r.authMiddleware.Authenticate)
	lookups.HandleFunc("/barangays", r.appointmentHandler.ListBarangays).Methods(http.MethodGet)
	lookups.HandleFunc("/service-types", r.appointmentHandler.ListServiceTypes).Methods(http.MethodGet)

	// Admin routes (protected - front desk roles)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireFrontDesk)
	admin.HandleFunc("/patients/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
