package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Description string             `bson:"description,omitempty"`
	Price       int                `bson:"price,omitempty"`
	DurationMin int                `bson:"durationMinutes,omitempty"`
	TimeModel   `bson:",inline"`
}
