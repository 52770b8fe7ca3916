// Coach API
//
// REST API for nutrition coaching: energy/macro recommendations and
// daily tracking with forward weight projection.
//
//	@title			Coach API
//	@version		1.0
//	@description	Run the energy expert system, log daily tracking data, and project weight trends.
//
//	@BasePath	/v1
//
//	@tag.name			clients
//	@tag.description	Client management endpoints
//
//	@tag.name			calculations
//	@tag.description	Energy expert system endpoints
//
//	@tag.name			tracking
//	@tag.description	Daily weight/intake tracking endpoints
//
//	@tag.name			projections
//	@tag.description	Trend and projection simulator endpoints
//
//	@tag.name			insights
//	@tag.description	LLM coaching commentary endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/nutricoach/coach-api/internal/api"
	"github.com/nutricoach/coach-api/internal/api/handler"
	"github.com/nutricoach/coach-api/internal/config"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/llm"
	"github.com/nutricoach/coach-api/internal/repository"
	"github.com/nutricoach/coach-api/internal/seed"
	"github.com/nutricoach/coach-api/internal/service"
	"github.com/nutricoach/coach-api/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "coach-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Client{}, &domain.EnergyCalculation{}, &domain.TrackingEntry{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	calcRepo := repository.NewCalculationRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	// Initialize services
	clientService := service.NewClientService(clientRepo)
	energyService := service.NewEnergyService(calcRepo, clientRepo)
	trackingService := service.NewTrackingService(trackingRepo, clientRepo)
	projectionService := service.NewProjectionService(trackingRepo, clientRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICommentaryModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	insightsService := service.NewInsightsService(openaiClient, clientRepo, calcRepo, trackingRepo)

	// Initialize handlers
	clientHandler := handler.NewClientHandler(clientService)
	calculationHandler := handler.NewCalculationHandler(energyService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	projectionHandler := handler.NewProjectionHandler(projectionService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(clientHandler, calculationHandler, trackingHandler, projectionHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
