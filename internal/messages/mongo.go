package messages

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements Repository using a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, m *Message) (string, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return "", err
	}
	// the driver leaves InsertedID nil for unacknowledged writes
	if res.InsertedID == nil {
		return "", ErrNotAcknowledged
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}
