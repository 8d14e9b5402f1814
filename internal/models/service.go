package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Service is a bookable service offering. The collection is maintained
// elsewhere; this backend only reads it.
type Service struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string        `bson:"title" json:"title"`
	Price       string        `bson:"price" json:"price"`
	Img         string        `bson:"img,omitempty" json:"img,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
}
