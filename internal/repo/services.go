package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"car-service-booking/internal/models"
)

type ServicesMongo struct{ C *mongo.Collection }

func (r *ServicesMongo) FindAll(ctx context.Context) ([]models.Service, error) {
	cur, err := r.C.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	out := make([]models.Service, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID returns (nil, nil) when no document matches.
func (r *ServicesMongo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Service, error) {
	var svc models.Service
	err := r.C.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&svc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}
