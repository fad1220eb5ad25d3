package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserName     string             `bson:"userName"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password"`
	MobileNumber string             `bson:"mobileNumber,omitempty"`
	AuthProvider string             `bson:"authProvider,omitempty"`
	TimeModel    `bson:",inline"`
}
