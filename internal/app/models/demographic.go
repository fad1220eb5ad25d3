package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Demographic struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	UserName           string             `bson:"userName"`
	FirstName          string             `bson:"firstName"`
	LastName           string             `bson:"lastName,omitempty"`
	DateOfBirth        string             `bson:"dob,omitempty"`
	Gender             string             `bson:"gender,omitempty"`
	BloodGroup         string             `bson:"bloodGroup,omitempty"`
	MaritalStatus      string             `bson:"maritalStatus,omitempty"`
	Height             float64            `bson:"height,omitempty"`
	Weight             float64            `bson:"weight,omitempty"`
	Occupation         string             `bson:"occupation,omitempty"`
	Address            string             `bson:"address,omitempty"`
	City               string             `bson:"city,omitempty"`
	State              string             `bson:"state,omitempty"`
	ZipCode            string             `bson:"zipCode,omitempty"`
	EmergencyContact   string             `bson:"emergencyContact,omitempty"`
	ProfilePicturePath string             `bson:"profilePicturePath,omitempty"`
	TimeModel          `bson:",inline"`
}
