package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Physician struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Specialization string             `bson:"specialization"`
	Qualification  string             `bson:"qualification,omitempty"`
	Experience     int                `bson:"experience,omitempty"`
	ConsultingFee  int                `bson:"consultingFee,omitempty"`
	Clinics        []Clinic           `bson:"clinics,omitempty"`
	Email          string             `bson:"email,omitempty"`
	MobileNumber   string             `bson:"mobileNumber,omitempty"`
	TimeModel      `bson:",inline"`
}

// Clinic schedules are descriptive only, booking does not check them.
type Clinic struct {
	ClinicName  string       `bson:"clinicName"`
	Address     string       `bson:"address,omitempty"`
	City        string       `bson:"city,omitempty"`
	WorkingDays []WorkingDay `bson:"workingDays,omitempty"`
}

type WorkingDay struct {
	Day       string `bson:"day"`
	StartTime string `bson:"startTime"`
	EndTime   string `bson:"endTime"`
}
