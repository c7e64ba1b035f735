package ports

import (
	"context"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.BookedSlot) error
	List(ctx context.Context) ([]*domain.BookedSlot, error)
}
