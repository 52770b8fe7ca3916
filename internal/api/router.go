package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/nutricoach/coach-api/docs"
	"github.com/nutricoach/coach-api/internal/api/handler"
	"github.com/nutricoach/coach-api/internal/api/middleware"
)

type Router struct {
	clientHandler      *handler.ClientHandler
	calculationHandler *handler.CalculationHandler
	trackingHandler    *handler.TrackingHandler
	projectionHandler  *handler.ProjectionHandler
	insightsHandler    *handler.InsightsHandler
}

func NewRouter(
	clientHandler *handler.ClientHandler,
	calculationHandler *handler.CalculationHandler,
	trackingHandler *handler.TrackingHandler,
	projectionHandler *handler.ProjectionHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		clientHandler:      clientHandler,
		calculationHandler: calculationHandler,
		trackingHandler:    trackingHandler,
		projectionHandler:  projectionHandler,
		insightsHandler:    insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(cors.AllowAll().Handler)

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
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", rt.clientHandler.Create)
			r.Get("/{clientId}", rt.clientHandler.GetByID)

			r.Route("/{clientId}/calculations", func(r chi.Router) {
				r.Post("/", rt.calculationHandler.Create)
				r.Get("/", rt.calculationHandler.List)
			})

			r.Route("/{clientId}/tracking", func(r chi.Router) {
				r.Put("/{date}", rt.trackingHandler.Upsert)
				r.Get("/", rt.trackingHandler.List)
			})

			r.Route("/{clientId}/projection", func(r chi.Router) {
				r.Get("/", rt.projectionHandler.Get)
				r.Get("/chart", rt.projectionHandler.Chart)
			})

			r.Get("/{clientId}/insights", rt.insightsHandler.Generate)
		})
	})

	return r
}
