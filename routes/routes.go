package routes

import (
	"io"
	"net/http"

	"airjustice/handler"
	"airjustice/metrics"
	"airjustice/middleware"
	"airjustice/service"
	"airjustice/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Services bundles what the HTTP layer needs
type Services struct {
	Aqi        *service.AqiService
	Forecast   *service.ForecastService
	Legal      *service.LegalService
	Health     *service.HealthService
	Sources    *service.SourceService
	Complaints *service.ComplaintService
	Clock      utils.Clock

	JWTSecret     string
	AdminToken    string
	TokenTTLHours int
}

// SetupRoutes configures all API routes
func SetupRoutes(s Services) *mux.Router {
	router := mux.NewRouter()

	// Initialize handlers
	publicHandler := handler.NewPublicHandler(s.Clock)
	airHandler := handler.NewAirHandler(s.Aqi, s.Forecast, s.Legal, s.Health, s.Sources)
	complaintHandler := handler.NewComplaintHandler(s.Complaints)
	authorityHandler := handler.NewAuthorityHandler(s.Complaints, s.JWTSecret, s.TokenTTLHours, s.Clock)
	adminHandler := handler.NewAdminHandler(s.Complaints)

	// Initialize auth middleware
	authorityAuth := middleware.NewAuthorityAuthMiddleware(s.JWTSecret, s.Clock)
	adminAuth := middleware.RequireAdminAuth(s.AdminToken)

	// Public routes
	router.HandleFunc("/", publicHandler.Root).Methods("GET")
	router.HandleFunc("/health", publicHandler.Health).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Air quality routes
	router.HandleFunc("/aqi", airHandler.GetAqi).Methods("GET")
	router.HandleFunc("/aqi/predict", airHandler.PredictAqi).Methods("GET")
	router.HandleFunc("/legal/check", airHandler.CheckLegal).Methods("GET")
	router.HandleFunc("/health/impact", airHandler.HealthImpact).Methods("GET")
	router.HandleFunc("/sources/detect", airHandler.DetectSources).Methods("GET")

	// Complaint routes
	router.HandleFunc("/complaint/file", complaintHandler.FileComplaint).Methods("POST")
	router.HandleFunc("/complaint/status/{id}", complaintHandler.GetComplaintStatus).Methods("GET")

	apiV1 := router.PathPrefix("/api/v1").Subrouter()

	// Authority routes: token issuance is admin-only, listing needs an authority JWT
	authority := apiV1.PathPrefix("/authority").Subrouter()
	authority.Handle("/token", adminAuth(http.HandlerFunc(authorityHandler.IssueToken))).Methods("POST")
	authority.Handle("/complaints", authorityAuth.RequireAuthorityAuth(http.HandlerFunc(authorityHandler.ListComplaints))).Methods("GET")

	// Admin routes (static token)
	admin := apiV1.PathPrefix("/admin").Subrouter()
	admin.Handle("/complaints/refresh", adminAuth(http.HandlerFunc(adminHandler.RefreshStatuses))).Methods("POST")

	return router
}

// WithMiddleware wraps the router with CORS and access logging
func WithMiddleware(router http.Handler, corsOrigins []string, accessLog io.Writer) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(corsOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return handlers.LoggingHandler(accessLog, cors(router))
}
