package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"github.com/amu0701/aman-khelkud-backend-main/internal/metrics"
	"github.com/amu0701/aman-khelkud-backend-main/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a user keyed by phone number. The lookup and the insert are
// not atomic, two concurrent registrations of one number can both succeed.
func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	if input.PhNum == "" {
		return nil, domain.ErrPhoneRequired
	}

	_, err := s.repo.GetByPhone(ctx, input.PhNum)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check user: %w", err)
	}

	user := &domain.User{
		FullName: input.FullName,
		PhNum:    input.PhNum,
	}
	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	metrics.RecordCreated(metrics.EntityUser)

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
	)

	return user, nil
}

// Login returns the stored user for phNum. There is no credential check.
func (s *UserService) Login(ctx context.Context, phNum string) (*domain.User, error) {
	if phNum == "" {
		return nil, domain.ErrPhoneRequired
	}

	user, err := s.repo.GetByPhone(ctx, phNum)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// Add stores a full user record without the phone uniqueness check Register does.
func (s *UserService) Add(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		FullName:       input.FullName,
		Email:          input.Email,
		PhNum:          input.PhNum,
		DOB:            input.DOB,
		Address:        input.Address,
		City:           input.City,
		Pincode:        input.Pincode,
		SelectBranch:   input.SelectBranch,
		MembershipPlan: input.MembershipPlan,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	metrics.RecordCreated(metrics.EntityUser)

	s.logger.Info("user added",
		logger.String("user_id", user.ID),
	)

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
