package service

import (
	"context"
	"fmt"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"github.com/amu0701/aman-khelkud-backend-main/internal/metrics"
	"github.com/amu0701/aman-khelkud-backend-main/internal/service/ports"
)

type SportService struct {
	repo ports.SportRepo
}

func NewSportService(repo ports.SportRepo) *SportService {
	return &SportService{repo: repo}
}

func (s *SportService) Add(ctx context.Context, input domain.CreateSportInput) (*domain.Sport, error) {
	sport := &domain.Sport{
		SportName:    input.SportName,
		CategoryType: input.CategoryType,
		Description:  input.Description,
		Status:       input.Status,
	}

	if err := s.repo.Create(ctx, sport); err != nil {
		return nil, fmt.Errorf("create sport: %w", err)
	}
	metrics.RecordCreated(metrics.EntitySport)

	return sport, nil
}

func (s *SportService) List(ctx context.Context) ([]*domain.Sport, error) {
	return s.repo.List(ctx)
}
