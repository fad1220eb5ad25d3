package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment references the owning account by its document id so a
// username rename never detaches the booking history.
type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	PhysicianID primitive.ObjectID `bson:"physicianId"`
	BookedTime  string             `bson:"bookedTime"`
	Status      string             `bson:"status"`
	TimeModel   `bson:",inline"`
}
