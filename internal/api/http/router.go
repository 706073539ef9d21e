package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pharmacy-booking/internal/api/http/handlers"
	"github.com/spec-kit/pharmacy-booking/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Appointments   *handlers.AppointmentsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/admin/login", cfg.Auth.AdminLogin)

	authProtected := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authProtected.Get("/session", cfg.Auth.Session)
	authProtected.Post("/logout", cfg.Auth.Logout)
	authProtected.Put("/profile", cfg.Auth.UpdateProfile)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	appointments := app.Group("/appointments")
	appointments.Get("/slots", cfg.Appointments.Slots)

	booked := appointments.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	booked.Get("", cfg.Appointments.List)
	booked.Post("", cfg.Appointments.Create)
	booked.Delete("/:id", cfg.Appointments.Delete)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/appointments", cfg.Admin.Appointments)
	admin.Patch("/appointments/:id/status", cfg.Admin.UpdateStatus)
	admin.Delete("/appointments/:id", cfg.Admin.DeleteAppointment)
	admin.Get("/users", cfg.Admin.Users)
	admin.Get("/stats", cfg.Admin.Stats)
}
