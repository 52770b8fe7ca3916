package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/llm"
	"github.com/nutricoach/coach-api/internal/repository"
)

// recentEntriesForCommentary caps how much raw tracking data is sent to the LLM.
const recentEntriesForCommentary = 14

// InsightsService generates LLM coaching commentary for a client's latest
// calculation and tracking trend.
type InsightsService interface {
	Generate(ctx context.Context, clientID uuid.UUID) (*domain.CommentaryResponse, error)
}

type insightsService struct {
	llmClient    llm.CommentaryLLM
	clientRepo   repository.ClientRepository
	calcRepo     repository.CalculationRepository
	trackingRepo repository.TrackingRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	llmClient llm.CommentaryLLM,
	clientRepo repository.ClientRepository,
	calcRepo repository.CalculationRepository,
	trackingRepo repository.TrackingRepository,
) InsightsService {
	return &insightsService{
		llmClient:    llmClient,
		clientRepo:   clientRepo,
		calcRepo:     calcRepo,
		trackingRepo: trackingRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, clientID uuid.UUID) (*domain.CommentaryResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// A commentary needs a calculation to talk about.
	latest, err := s.calcRepo.Latest(ctx, clientID)
	if err != nil {
		return nil, err
	}

	entries, err := s.trackingRepo.ListAll(ctx, clientID)
	if err != nil {
		return nil, err
	}

	projection := ComputeProjection(entries, float64(latest.Result.RecommendedCalories))

	recent := entries
	if len(recent) > recentEntriesForCommentary {
		recent = recent[len(recent)-recentEntriesForCommentary:]
	}
	recentResponses := make([]domain.TrackingEntryResponse, len(recent))
	for i, e := range recent {
		recentResponses[i] = e.ToResponse()
	}

	commentaryCtx := &domain.CommentaryContext{
		Client:        client.ToResponse(),
		Calculation:   latest.Result,
		Reasoning:     latest.Result.ReasoningText(),
		RecentEntries: recentResponses,
		Projection:    *projection,
	}

	commentary, err := s.llmClient.GenerateCommentary(ctx, commentaryCtx)
	if err != nil {
		return nil, err
	}

	return &domain.CommentaryResponse{
		Client:      client.ToResponse(),
		Calculation: latest.Result,
		Commentary:  *commentary,
	}, nil
}
