package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/makeready-service/internal/api/http/handlers"
	"github.com/spec-kit/makeready-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Properties *handlers.PropertiesHandler
	Requests   *handlers.RequestsHandler
	Profiles   *handlers.ProfilesHandler
	Contact    *handlers.ContactHandler
	Plans      *handlers.PlansHandler
	Identity   *auth.IdentityMiddleware
}

// RegisterRoutes wires HTTP routes. Identity resolution runs on every route;
// it never fails, so public endpoints see the anonymous caller. Services
// consult the role authority again, the route guards only fail fast.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(cfg.Identity.Handle)

	app.Post("/contact", cfg.Contact.Submit)
	app.Get("/plans", cfg.Plans.ListPlans)
	app.Get("/plans/:id", cfg.Plans.GetPlan)

	authed := app.Group("", auth.RequireAuthenticated())
	authed.Post("/properties", cfg.Properties.AddProperty)
	authed.Get("/properties", cfg.Properties.ListProperties)
	authed.Get("/properties/:id", cfg.Properties.GetProperty)

	authed.Post("/requests", cfg.Requests.CreateRequest)
	authed.Get("/requests", cfg.Requests.ListRequests)
	authed.Get("/requests/:id", cfg.Requests.GetRequest)
	authed.Post("/requests/:id/photos", cfg.Requests.UploadPhoto)

	authed.Get("/profile", cfg.Profiles.GetOwnProfile)
	authed.Put("/profile", cfg.Profiles.SaveOwnProfile)
	authed.Get("/profile/role", cfg.Profiles.GetOwnRole)
	authed.Get("/profile/admin", cfg.Profiles.IsAdmin)
	authed.Get("/users/:principal/profile", cfg.Profiles.GetProfile)

	admin := app.Group("", auth.RequireAdmin())
	admin.Patch("/requests/:id/status", cfg.Requests.UpdateStatus)
	admin.Get("/contact", cfg.Contact.ListForms)
	admin.Get("/contact/:id", cfg.Contact.GetForm)
	admin.Put("/users/:principal/role", cfg.Profiles.AssignRole)
}
