package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
)

// MockClientService is a mock implementation of ClientService
type MockClientService struct {
	createFunc  func(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

func (m *MockClientService) Create(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Client{
		ID:        uuid.New(),
		Name:      req.Name,
		Gender:    req.Gender,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockClientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Client{
		ID:     id,
		Name:   "Alex",
		Gender: domain.GenderMale,
	}, nil
}

// MockEnergyService is a mock implementation of EnergyService
type MockEnergyService struct {
	calculateFunc func(ctx context.Context, clientID uuid.UUID, input *domain.CalculationInput) (*domain.EnergyCalculation, error)
	listFunc      func(ctx context.Context, clientID uuid.UUID, filter domain.CalculationFilter) (*domain.CalculationListResponse, error)
}

func (m *MockEnergyService) Calculate(ctx context.Context, clientID uuid.UUID, input *domain.CalculationInput) (*domain.EnergyCalculation, error) {
	if m.calculateFunc != nil {
		return m.calculateFunc(ctx, clientID, input)
	}
	return &domain.EnergyCalculation{
		ID:           uuid.New(),
		ClientID:     clientID,
		CalculatedAt: time.Now(),
		Input:        *input,
		Result: domain.EnergyCalculationResult{
			RecommendedCalories: 2151,
			Macros:              domain.MacroSplit{ProteinG: 180, CarbsG: 223, FatG: 60},
			DeficitSpeed:        domain.SpeedModerate,
		},
	}, nil
}

func (m *MockEnergyService) List(ctx context.Context, clientID uuid.UUID, filter domain.CalculationFilter) (*domain.CalculationListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, clientID, filter)
	}
	return &domain.CalculationListResponse{
		Data:       []domain.CalculationResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockTrackingService is a mock implementation of TrackingService
type MockTrackingService struct {
	upsertFunc func(ctx context.Context, clientID uuid.UUID, date time.Time, req *domain.UpsertTrackingRequest) (*domain.TrackingEntry, error)
	listFunc   func(ctx context.Context, clientID uuid.UUID, filter domain.TrackingFilter) (*domain.TrackingListResponse, error)
}

func (m *MockTrackingService) Upsert(ctx context.Context, clientID uuid.UUID, date time.Time, req *domain.UpsertTrackingRequest) (*domain.TrackingEntry, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, clientID, date, req)
	}
	return &domain.TrackingEntry{
		ID:        uuid.New(),
		ClientID:  clientID,
		EntryDate: date,
		WeightKg:  req.WeightKg,
		Calories:  req.Calories,
	}, nil
}

func (m *MockTrackingService) List(ctx context.Context, clientID uuid.UUID, filter domain.TrackingFilter) (*domain.TrackingListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, clientID, filter)
	}
	return &domain.TrackingListResponse{
		Data:       []domain.TrackingEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockProjectionService is a mock implementation of ProjectionService
type MockProjectionService struct {
	projectFunc func(ctx context.Context, clientID uuid.UUID, targetCalories float64) (*domain.ProjectionResult, error)
}

func (m *MockProjectionService) Project(ctx context.Context, clientID uuid.UUID, targetCalories float64) (*domain.ProjectionResult, error) {
	if m.projectFunc != nil {
		return m.projectFunc(ctx, clientID, targetCalories)
	}
	return &domain.ProjectionResult{
		TargetCalories: targetCalories,
		Historical:     []domain.ProjectionPoint{},
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, clientID uuid.UUID) (*domain.CommentaryResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, clientID uuid.UUID) (*domain.CommentaryResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, clientID)
	}
	return &domain.CommentaryResponse{
		Commentary: domain.CoachCommentary{
			Summary:      "Steady progress.",
			Observations: []string{"Weight trend is down"},
			Guidance:     []string{"Hold the current target"},
		},
	}, nil
}
