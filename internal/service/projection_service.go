package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProjectionService runs the trend and projection simulator over a
// client's stored tracking series.
type ProjectionService interface {
	Project(ctx context.Context, clientID uuid.UUID, targetCalories float64) (*domain.ProjectionResult, error)
}

type projectionService struct {
	trackingRepo repository.TrackingRepository
	clientRepo   repository.ClientRepository
}

func NewProjectionService(trackingRepo repository.TrackingRepository, clientRepo repository.ClientRepository) ProjectionService {
	return &projectionService{
		trackingRepo: trackingRepo,
		clientRepo:   clientRepo,
	}
}

func (s *projectionService) Project(ctx context.Context, clientID uuid.UUID, targetCalories float64) (*domain.ProjectionResult, error) {
	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tracer := otel.Tracer("coach-api/projection")
	ctx, span := tracer.Start(ctx, "ProjectionService.Project",
		trace.WithAttributes(
			attribute.String("client.id", clientID.String()),
			attribute.Float64("projection.target_calories", targetCalories),
		),
	)
	defer span.End()

	entries, err := s.trackingRepo.ListAll(ctx, clientID)
	if err != nil {
		return nil, err
	}

	result := ComputeProjection(entries, targetCalories)

	span.SetAttributes(
		attribute.Bool("projection.sufficient_data", result.SufficientData),
		attribute.Int("projection.history_points", len(result.Historical)),
		attribute.Bool("projection.weekday_pattern", result.WeekdayPattern.Detected),
	)

	return result, nil
}
