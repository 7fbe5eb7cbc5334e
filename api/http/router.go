package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobswipe/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Everything except
// health probes and auth is behind the JWT middleware.
func Register(app *fiber.App, authMW fiber.Handler,
	auth *handlers.AuthHandler, health *handlers.HealthHandler,
	resume *handlers.ResumeHandler, jobs *handlers.JobsHandler, liked *handlers.LikedHandler) {

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Get("/me", authMW, auth.Me)

	// Resume upload and derived profile signals
	rg := v1.Group("/resume", authMW)
	rg.Post("/", resume.Upload)
	rg.Get("/", resume.Meta)
	rg.Get("/signals", resume.Signals)

	// Ranked job feed
	jg := v1.Group("/jobs", authMW)
	jg.Get("/", jobs.Feed)
	jg.Get("/:id", jobs.Details)

	// Liked jobs (right swipes)
	lg := v1.Group("/liked", authMW)
	lg.Post("/", liked.Like)
	lg.Get("/", liked.List)
	lg.Post("/:id/apply", liked.Apply)
	lg.Delete("/:id", liked.Remove)
}
