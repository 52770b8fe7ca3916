package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/repository"
	"github.com/nutricoach/coach-api/pkg/pagination"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EnergyService runs the expert system and manages calculation snapshots.
type EnergyService interface {
	// Calculate runs the pipeline on the given input and persists the
	// result as a new immutable snapshot for the client.
	Calculate(ctx context.Context, clientID uuid.UUID, input *domain.CalculationInput) (*domain.EnergyCalculation, error)
	// List returns the client's snapshot history, newest first.
	List(ctx context.Context, clientID uuid.UUID, filter domain.CalculationFilter) (*domain.CalculationListResponse, error)
}

type energyService struct {
	calcRepo   repository.CalculationRepository
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewEnergyService creates a new EnergyService.
func NewEnergyService(calcRepo repository.CalculationRepository, clientRepo repository.ClientRepository) EnergyService {
	return &energyService{
		calcRepo:   calcRepo,
		clientRepo: clientRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *energyService) Calculate(ctx context.Context, clientID uuid.UUID, input *domain.CalculationInput) (*domain.EnergyCalculation, error) {
	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	tracer := otel.Tracer("coach-api/energy")
	ctx, span := tracer.Start(ctx, "EnergyService.Calculate",
		trace.WithAttributes(
			attribute.String("client.id", clientID.String()),
			attribute.String("goal", string(input.Activity.Goal)),
		),
	)
	defer span.End()

	if inputJSON, err := json.Marshal(input); err == nil {
		span.SetAttributes(attribute.String("calculation.input", string(inputJSON)))
	}

	result, err := ComputeOptimalCalories(*input)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("calculation.recommended_calories", result.RecommendedCalories),
		attribute.String("calculation.deficit_speed", string(result.DeficitSpeed)),
	)

	calc := &domain.EnergyCalculation{
		ClientID:     clientID,
		CalculatedAt: s.now(),
		Input:        *input,
		Result:       *result,
	}

	if err := s.calcRepo.Create(ctx, calc); err != nil {
		return nil, err
	}

	return calc, nil
}

func (s *energyService) List(ctx context.Context, clientID uuid.UUID, filter domain.CalculationFilter) (*domain.CalculationListResponse, error) {
	exists, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	calcs, err := s.calcRepo.List(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(calcs) > limit
	if hasMore {
		calcs = calcs[:limit]
	}

	response := &domain.CalculationListResponse{
		Data: make([]domain.CalculationResponse, len(calcs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, calc := range calcs {
		response.Data[i] = calc.ToResponse()
	}

	if hasMore && len(calcs) > 0 {
		last := calcs[len(calcs)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			Timestamp: last.CalculatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
