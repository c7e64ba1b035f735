package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type slotDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	BookBy      string             `bson:"bookby,omitempty"`
	SportName   string             `bson:"sportName,omitempty"`
	Branch      string             `bson:"branch,omitempty"`
	FullName    string             `bson:"fullName,omitempty"`
	PhNum       string             `bson:"phNum,omitempty"`
	AddFriend   []map[string]any   `bson:"addFriend"`
	Date        string             `bson:"date,omitempty"`
	Duration    string             `bson:"duration,omitempty"`
	TimeSlot    string             `bson:"timeSlot,omitempty"`
	Type        string             `bson:"type,omitempty"`
	TotalPlayer float64            `bson:"totalPlayer"`
	Amount      float64            `bson:"amount"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d *slotDoc) toDomain() *domain.BookedSlot {
	friends := d.AddFriend
	if friends == nil {
		friends = []map[string]any{}
	}

	return &domain.BookedSlot{
		ID:          d.ID.Hex(),
		BookBy:      d.BookBy,
		SportName:   d.SportName,
		Branch:      d.Branch,
		FullName:    d.FullName,
		PhNum:       d.PhNum,
		AddFriend:   friends,
		Date:        d.Date,
		Duration:    d.Duration,
		TimeSlot:    d.TimeSlot,
		Type:        domain.SlotType(d.Type),
		TotalPlayer: d.TotalPlayer,
		Amount:      d.Amount,
		CreatedAt:   d.CreatedAt,
	}
}

type SlotRepository struct {
	coll *mongo.Collection
}

func NewSlotRepo(db *mongo.Database) *SlotRepository {
	return &SlotRepository{coll: db.Collection(slotsCollection)}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.BookedSlot) error {
	friends := s.AddFriend
	if friends == nil {
		friends = []map[string]any{}
	}

	doc := slotDoc{
		ID:          primitive.NewObjectID(),
		BookBy:      s.BookBy,
		SportName:   s.SportName,
		Branch:      s.Branch,
		FullName:    s.FullName,
		PhNum:       s.PhNum,
		AddFriend:   friends,
		Date:        s.Date,
		Duration:    s.Duration,
		TimeSlot:    s.TimeSlot,
		Type:        string(s.Type),
		TotalPlayer: s.TotalPlayer,
		Amount:      s.Amount,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert booked slot: %w", err)
	}

	s.ID = doc.ID.Hex()
	s.AddFriend = friends
	s.CreatedAt = doc.CreatedAt
	return nil
}

func (r *SlotRepository) List(ctx context.Context) ([]*domain.BookedSlot, error) {
	return findAll(ctx, r.coll, (*slotDoc).toDomain)
}
