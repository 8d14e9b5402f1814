package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"car-service-booking/internal/models"
)

// ServicesStore is the read-only view of the services collection.
type ServicesStore interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Service, error)
}

// OrdersStore covers the order CRUD surface.
type OrdersStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.Order, error)
	Insert(ctx context.Context, order models.Order) (bson.ObjectID, error)
	SetStatus(ctx context.Context, id bson.ObjectID) (matched, modified int64, err error)
	Delete(ctx context.Context, id bson.ObjectID) (int64, error)
}
