package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Order is a customer booking for a service. Status starts false and flips
// to true once via the status-update route.
type Order struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string        `bson:"email" json:"email"`
	Service   string        `bson:"service" json:"service"`
	ServiceID string        `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Price     string        `bson:"price,omitempty" json:"price,omitempty"`
	Date      string        `bson:"date,omitempty" json:"date,omitempty"`
	Status    bool          `bson:"status" json:"status"`
}
