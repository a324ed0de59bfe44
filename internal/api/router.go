package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/janasiksha/jpk-web/internal/api/handler"
	"github.com/janasiksha/jpk-web/internal/api/middleware"
	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

// Deps are the services and settings the HTTP layer is built from.
type Deps struct {
	Navigation ports.NavigationService
	Login      ports.LoginService
	Admin      ports.AdminService
	Donations  ports.DonationService
	Tokens     *middleware.SessionTokens
	// Readiness lists the configured backends checked by /health/ready.
	Readiness map[string]handler.Pinger
	// Registry receives the HTTP request metrics. A nil Registry gets a
	// fresh one, so several routers can live in one process.
	Registry      *prometheus.Registry
	CCTVStreamURL string
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	e.Use(middleware.Metrics(reg))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(middleware.Boundary(d.Log))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(d.Navigation, d.Tokens)
	navHandler := handler.NewNavigationHandler(d.Navigation)
	loginHandler := handler.NewLoginHandler(d.Login)
	adminHandler := handler.NewAdminHandler(d.Admin)
	donationHandler := handler.NewDonationHandler(d.Donations)
	cctvHandler := handler.NewCCTVHandler(d.CCTVStreamURL)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Readiness)

	// --- Health probes and operations (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", middleware.MetricsHandler(reg))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Public routes ---
	api.POST("/session", sessionHandler.Start)
	api.POST("/users", loginHandler.CreateUser)
	api.POST("/donations", donationHandler.Donate)

	// --- Admin panel (standalone page, unauthenticated) ---
	admin := api.Group("/admin")
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/draft", adminHandler.DraftUser)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/transactions", adminHandler.Transactions)

	// --- Session-bound routes ---
	withSession := middleware.Session(d.Tokens)
	api.GET("/session", sessionHandler.Get, withSession)
	api.POST("/session/logout", sessionHandler.Logout, withSession)

	api.GET("/sections", navHandler.Sections, withSession)
	api.GET("/sections/:key", navHandler.Resolve, withSession)
	api.POST("/navigate", navHandler.Navigate, withSession)

	api.GET("/login", loginHandler.State, withSession)
	api.POST("/login/open", loginHandler.Open, withSession)
	api.POST("/login/credentials", loginHandler.SubmitCredentials, withSession)
	api.POST("/login/otp", loginHandler.VerifyOTP, withSession)
	api.POST("/login/otp/resend", loginHandler.ResendOTP, withSession)
	api.POST("/login/forgot", loginHandler.RequestForgotPassword, withSession)
	api.POST("/login/forgot/submit", loginHandler.SubmitForgotPassword, withSession)
	api.POST("/login/back", loginHandler.Back, withSession)

	// Route middleware runs in order: the session is resolved before the gate.
	api.GET("/cctv", cctvHandler.Stream, withSession, middleware.Gate(d.Navigation, domain.SectionLiveCCTV))

	return e
}
