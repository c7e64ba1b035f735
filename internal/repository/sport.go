package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type sportDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	SportName    string             `bson:"sportName,omitempty"`
	CategoryType string             `bson:"categoryType,omitempty"`
	Description  string             `bson:"description,omitempty"`
	Status       string             `bson:"status,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d *sportDoc) toDomain() *domain.Sport {
	return &domain.Sport{
		ID:           d.ID.Hex(),
		SportName:    d.SportName,
		CategoryType: d.CategoryType,
		Description:  d.Description,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
}

type SportRepository struct {
	coll *mongo.Collection
}

func NewSportRepo(db *mongo.Database) *SportRepository {
	return &SportRepository{coll: db.Collection(sportsCollection)}
}

func (r *SportRepository) Create(ctx context.Context, s *domain.Sport) error {
	doc := sportDoc{
		ID:           primitive.NewObjectID(),
		SportName:    s.SportName,
		CategoryType: s.CategoryType,
		Description:  s.Description,
		Status:       s.Status,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert sport: %w", err)
	}

	s.ID = doc.ID.Hex()
	s.CreatedAt = doc.CreatedAt
	return nil
}

func (r *SportRepository) List(ctx context.Context) ([]*domain.Sport, error) {
	return findAll(ctx, r.coll, (*sportDoc).toDomain)
}
