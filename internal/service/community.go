package service

import (
	"context"
	"fmt"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"github.com/amu0701/aman-khelkud-backend-main/internal/metrics"
	"github.com/amu0701/aman-khelkud-backend-main/internal/service/ports"
)

type CommunityService struct {
	repo ports.CommunityRepo
}

func NewCommunityService(repo ports.CommunityRepo) *CommunityService {
	return &CommunityService{repo: repo}
}

func (s *CommunityService) Create(ctx context.Context, input domain.CreateCommunityInput) (*domain.Community, error) {
	c := &domain.Community{
		Sport:          input.Sport,
		Facility:       input.Facility,
		Date:           input.Date,
		Time:           input.Time,
		RequiredPlayer: input.RequiredPlayer,
		InstantJoin:    input.InstantJoin,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create community: %w", err)
	}
	metrics.RecordCreated(metrics.EntityCommunity)

	return c, nil
}

func (s *CommunityService) List(ctx context.Context) ([]*domain.Community, error) {
	return s.repo.List(ctx)
}
