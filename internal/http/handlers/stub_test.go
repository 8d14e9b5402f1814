package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"car-service-booking/internal/models"
)

type stubServices struct {
	all   []models.Service
	byID  *models.Service
	err   error
	calls int
}

func (s *stubServices) FindAll(ctx context.Context) ([]models.Service, error) {
	s.calls++
	return s.all, s.err
}

func (s *stubServices) FindByID(ctx context.Context, id bson.ObjectID) (*models.Service, error) {
	s.calls++
	return s.byID, s.err
}

type stubOrders struct {
	orders     []models.Order
	insertedID bson.ObjectID
	matched    int64
	modified   int64
	deleted    int64
	err        error
	calls      int
	lastInsert models.Order
}

func (s *stubOrders) FindByEmail(ctx context.Context, email string) ([]models.Order, error) {
	s.calls++
	return s.orders, s.err
}

func (s *stubOrders) Insert(ctx context.Context, order models.Order) (bson.ObjectID, error) {
	s.calls++
	s.lastInsert = order
	return s.insertedID, s.err
}

func (s *stubOrders) SetStatus(ctx context.Context, id bson.ObjectID) (int64, int64, error) {
	s.calls++
	return s.matched, s.modified, s.err
}

func (s *stubOrders) Delete(ctx context.Context, id bson.ObjectID) (int64, error) {
	s.calls++
	return s.deleted, s.err
}
