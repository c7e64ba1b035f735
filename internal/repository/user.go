package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	FullName       string             `bson:"fullName,omitempty"`
	Email          string             `bson:"email,omitempty"`
	PhNum          string             `bson:"phNum,omitempty"`
	DOB            string             `bson:"dob,omitempty"`
	Address        string             `bson:"address,omitempty"`
	City           string             `bson:"city,omitempty"`
	Pincode        string             `bson:"pincode,omitempty"`
	SelectBranch   string             `bson:"selectBranch,omitempty"`
	MembershipPlan string             `bson:"membershipPlan,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID.Hex(),
		FullName:       d.FullName,
		Email:          d.Email,
		PhNum:          d.PhNum,
		DOB:            d.DOB,
		Address:        d.Address,
		City:           d.City,
		Pincode:        d.Pincode,
		SelectBranch:   d.SelectBranch,
		MembershipPlan: d.MembershipPlan,
		CreatedAt:      d.CreatedAt,
	}
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// Create inserts user and fills in its ID and CreatedAt.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{
		ID:             primitive.NewObjectID(),
		FullName:       user.FullName,
		Email:          user.Email,
		PhNum:          user.PhNum,
		DOB:            user.DOB,
		Address:        user.Address,
		City:           user.City,
		Pincode:        user.Pincode,
		SelectBranch:   user.SelectBranch,
		MembershipPlan: user.MembershipPlan,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *UserRepository) GetByPhone(ctx context.Context, phNum string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "phNum", Value: phNum}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	return findAll(ctx, r.coll, (*userDoc).toDomain)
}
