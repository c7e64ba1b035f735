package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type communityDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	Sport          string             `bson:"sport,omitempty"`
	Facility       string             `bson:"facility,omitempty"`
	Date           string             `bson:"date,omitempty"`
	Time           string             `bson:"time,omitempty"`
	RequiredPlayer float64            `bson:"requiredPlayer"`
	InstantJoin    bool               `bson:"instantJoin"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

func (d *communityDoc) toDomain() *domain.Community {
	return &domain.Community{
		ID:             d.ID.Hex(),
		Sport:          d.Sport,
		Facility:       d.Facility,
		Date:           d.Date,
		Time:           d.Time,
		RequiredPlayer: d.RequiredPlayer,
		InstantJoin:    d.InstantJoin,
		CreatedAt:      d.CreatedAt,
	}
}

type CommunityRepository struct {
	coll *mongo.Collection
}

func NewCommunityRepo(db *mongo.Database) *CommunityRepository {
	return &CommunityRepository{coll: db.Collection(communitiesCollection)}
}

func (r *CommunityRepository) Create(ctx context.Context, c *domain.Community) error {
	doc := communityDoc{
		ID:             primitive.NewObjectID(),
		Sport:          c.Sport,
		Facility:       c.Facility,
		Date:           c.Date,
		Time:           c.Time,
		RequiredPlayer: c.RequiredPlayer,
		InstantJoin:    c.InstantJoin,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert community: %w", err)
	}

	c.ID = doc.ID.Hex()
	c.CreatedAt = doc.CreatedAt
	return nil
}

func (r *CommunityRepository) List(ctx context.Context) ([]*domain.Community, error) {
	return findAll(ctx, r.coll, (*communityDoc).toDomain)
}
