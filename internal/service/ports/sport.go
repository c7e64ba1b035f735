package ports

import (
	"context"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
)

type SportRepo interface {
	Create(ctx context.Context, s *domain.Sport) error
	List(ctx context.Context) ([]*domain.Sport, error)
}
