package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"car-service-booking/internal/models"
)

type OrdersMongo struct{ C *mongo.Collection }

func (r *OrdersMongo) FindByEmail(ctx context.Context, email string) ([]models.Order, error) {
	cur, err := r.C.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrdersMongo) Insert(ctx context.Context, order models.Order) (bson.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, order)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// SetStatus marks the order confirmed. A zero matched count means the id is
// unknown; that is reported to the caller, not treated as an error.
func (r *OrdersMongo) SetStatus(ctx context.Context, id bson.ObjectID) (matched, modified int64, err error) {
	res, err := r.C.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: true}}}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *OrdersMongo) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	res, err := r.C.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
