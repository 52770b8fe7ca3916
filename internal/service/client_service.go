package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutricoach/coach-api/internal/domain"
	"github.com/nutricoach/coach-api/internal/repository"
)

type ClientService interface {
	Create(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error) {
	client := &domain.Client{
		ID:     uuid.New(),
		Name:   req.Name,
		Gender: req.Gender,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}
