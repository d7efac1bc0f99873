package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/zenith/docs"
	"github.com/blaisecz/zenith/internal/api/handler"
	"github.com/blaisecz/zenith/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	User      *handler.UserHandler
	Habit     *handler.HabitHandler
	HabitLog  *handler.HabitLogHandler
	Analytics *handler.AnalyticsHandler
	Report    *handler.ReportHandler
	Narrative *handler.NarrativeHandler
	Export    *handler.ExportHandler
}

type Router struct {
	h Handlers
}

func NewRouter(h Handlers) *Router {
	return &Router{h: h}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.h.User.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.h.User.GetByID)

				// Protocols
				r.Route("/protocols", func(r chi.Router) {
					r.Get("/", rt.h.Habit.List)
					r.Post("/", rt.h.Habit.Create)
					r.Delete("/", rt.h.Habit.ClearAll)
					r.Patch("/{habitId}", rt.h.Habit.Update)
					r.Delete("/{habitId}", rt.h.Habit.Delete)
					r.Get("/{habitId}/streak", rt.h.Analytics.Streak)
				})

				// Logs
				r.Route("/logs", func(r chi.Router) {
					r.Put("/", rt.h.HabitLog.Upsert)
					r.Get("/", rt.h.HabitLog.List)
				})

				// Analytics
				r.Get("/dashboard", rt.h.Analytics.Dashboard)
				r.Get("/level", rt.h.Analytics.Level)

				// Reports
				r.Route("/reports", func(r chi.Router) {
					r.Post("/", rt.h.Report.Generate)
					r.Get("/", rt.h.Report.List)
				})

				// Narrative
				r.Get("/narrative", rt.h.Narrative.Get)
				r.Post("/narrative/feedback", rt.h.Narrative.Feedback)

				r.Get("/export", rt.h.Export.Export)
			})
		})
	})

	return r
}
