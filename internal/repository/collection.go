package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// findAll decodes every document of coll. Order is whatever the server returns.
func findAll[D any, T any](ctx context.Context, coll *mongo.Collection, toDomain func(*D) *T) ([]*T, error) {
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}

	var docs []D
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}

	res := make([]*T, 0, len(docs))
	for i := range docs {
		res = append(res, toDomain(&docs[i]))
	}
	return res, nil
}
