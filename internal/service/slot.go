package service

import (
	"context"
	"fmt"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"github.com/amu0701/aman-khelkud-backend-main/internal/metrics"
	"github.com/amu0701/aman-khelkud-backend-main/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SlotService struct {
	repo   ports.SlotRepo
	logger logger.Logger
}

func NewSlotService(repo ports.SlotRepo, logger logger.Logger) *SlotService {
	return &SlotService{repo: repo, logger: logger}
}

// Book records a slot reservation. Overlapping bookings of the same slot are
// not detected.
func (s *SlotService) Book(ctx context.Context, input domain.BookSlotInput) (*domain.BookedSlot, error) {
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: type: `%s` is not a valid enum value, want one of %s, %s",
			domain.ErrInvalidSlotType, input.Type, domain.SlotTypePrivate, domain.SlotTypeCommunity)
	}

	slot := &domain.BookedSlot{
		BookBy:      input.BookBy,
		SportName:   input.SportName,
		Branch:      input.Branch,
		FullName:    input.FullName,
		PhNum:       input.PhNum,
		AddFriend:   input.AddFriend,
		Date:        input.Date,
		Duration:    input.Duration,
		TimeSlot:    input.TimeSlot,
		Type:        input.Type,
		TotalPlayer: input.TotalPlayer,
		Amount:      input.Amount,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create booked slot: %w", err)
	}
	metrics.RecordCreated(metrics.EntitySlot)

	s.logger.Info("slot booked",
		logger.String("slot_id", slot.ID),
		logger.String("sport", slot.SportName),
		logger.String("date", slot.Date),
		logger.String("time_slot", slot.TimeSlot),
	)

	return slot, nil
}

func (s *SlotService) List(ctx context.Context) ([]*domain.BookedSlot, error) {
	return s.repo.List(ctx)
}
