package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report holds PDF metadata, the object itself lives in the reports
// bucket under ObjectName.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	FileName    string             `bson:"filename"`
	ObjectName  string             `bson:"objectName"`
	ContentType string             `bson:"contentType,omitempty"`
	SizeBytes   int64              `bson:"sizeBytes,omitempty"`
	TimeModel   `bson:",inline"`
}
