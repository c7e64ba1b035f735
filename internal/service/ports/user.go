package ports

import (
	"context"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByPhone(ctx context.Context, phNum string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
