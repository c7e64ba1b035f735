package ports

import (
	"context"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
)

type CommunityRepo interface {
	Create(ctx context.Context, c *domain.Community) error
	List(ctx context.Context) ([]*domain.Community, error)
}
