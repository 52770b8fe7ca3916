package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
)

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	clients map[uuid.UUID]*domain.Client
	err     error
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{clients: make(map[uuid.UUID]*domain.Client)}
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if m.err != nil {
		return m.err
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now()
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	client, ok := m.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (m *MockClientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.clients[id]
	return ok, nil
}

// MockCalculationRepository is a mock implementation of CalculationRepository
type MockCalculationRepository struct {
	calcs      map[uuid.UUID]*domain.EnergyCalculation
	listResult []domain.EnergyCalculation
	err        error
}

func NewMockCalculationRepository() *MockCalculationRepository {
	return &MockCalculationRepository{calcs: make(map[uuid.UUID]*domain.EnergyCalculation)}
}

func (m *MockCalculationRepository) Create(ctx context.Context, calc *domain.EnergyCalculation) error {
	if m.err != nil {
		return m.err
	}
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}
	m.calcs[calc.ID] = calc
	return nil
}

func (m *MockCalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.EnergyCalculation, error) {
	if m.err != nil {
		return nil, m.err
	}
	calc, ok := m.calcs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return calc, nil
}

func (m *MockCalculationRepository) List(ctx context.Context, clientID uuid.UUID, filter domain.CalculationFilter) ([]domain.EnergyCalculation, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.EnergyCalculation, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.EnergyCalculation
	for _, calc := range m.calcs {
		if calc.ClientID == clientID {
			result = append(result, *calc)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CalculatedAt.After(result[j].CalculatedAt)
	})
	return result, nil
}

func (m *MockCalculationRepository) Latest(ctx context.Context, clientID uuid.UUID) (*domain.EnergyCalculation, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *domain.EnergyCalculation
	for _, calc := range m.calcs {
		if calc.ClientID != clientID {
			continue
		}
		if latest == nil || calc.CalculatedAt.After(latest.CalculatedAt) {
			latest = calc
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	return latest, nil
}

// MockTrackingRepository is a mock implementation of TrackingRepository
type MockTrackingRepository struct {
	entries map[uuid.UUID]map[string]*domain.TrackingEntry
	err     error
}

func NewMockTrackingRepository() *MockTrackingRepository {
	return &MockTrackingRepository{entries: make(map[uuid.UUID]map[string]*domain.TrackingEntry)}
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func (m *MockTrackingRepository) Upsert(ctx context.Context, entry *domain.TrackingEntry) error {
	if m.err != nil {
		return m.err
	}
	series, ok := m.entries[entry.ClientID]
	if !ok {
		series = make(map[string]*domain.TrackingEntry)
		m.entries[entry.ClientID] = series
	}
	if existing, ok := series[dayKey(entry.EntryDate)]; ok {
		entry.ID = existing.ID
	} else if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stored := *entry
	series[dayKey(entry.EntryDate)] = &stored
	return nil
}

func (m *MockTrackingRepository) SaveDerived(ctx context.Context, entries []domain.TrackingEntry) error {
	if m.err != nil {
		return m.err
	}
	for i := range entries {
		series, ok := m.entries[entries[i].ClientID]
		if !ok {
			continue
		}
		if stored, ok := series[dayKey(entries[i].EntryDate)]; ok {
			stored.EWMAWeightKg = entries[i].EWMAWeightKg
			stored.StoreChangeKg = entries[i].StoreChangeKg
			stored.AdaptiveTDEE = entries[i].AdaptiveTDEE
		}
	}
	return nil
}

func (m *MockTrackingRepository) ListAll(ctx context.Context, clientID uuid.UUID) ([]domain.TrackingEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.TrackingEntry
	for _, entry := range m.entries[clientID] {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EntryDate.Before(result[j].EntryDate)
	})
	return result, nil
}

func (m *MockTrackingRepository) GetByDate(ctx context.Context, clientID uuid.UUID, date time.Time) (*domain.TrackingEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	if entry, ok := m.entries[clientID][dayKey(date)]; ok {
		return entry, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MockTrackingRepository) List(ctx context.Context, clientID uuid.UUID, filter domain.TrackingFilter) ([]domain.TrackingEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	all, _ := m.ListAll(ctx, clientID)
	var result []domain.TrackingEntry
	for _, entry := range all {
		if filter.From != nil && entry.EntryDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.EntryDate.After(*filter.To) {
			continue
		}
		result = append(result, entry)
	}
	// Newest first, matching the real repository ordering.
	sort.Slice(result, func(i, j int) bool {
		return result[i].EntryDate.After(result[j].EntryDate)
	})
	return result, nil
}

// MockCommentaryLLM is a mock implementation of llm.CommentaryLLM
type MockCommentaryLLM struct {
	commentary *domain.CoachCommentary
	lastCtx    *domain.CommentaryContext
	err        error
}

func (m *MockCommentaryLLM) GenerateCommentary(ctx context.Context, commentaryCtx *domain.CommentaryContext) (*domain.CoachCommentary, error) {
	m.lastCtx = commentaryCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.commentary, nil
}
