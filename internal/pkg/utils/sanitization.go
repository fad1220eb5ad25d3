package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Password = strings.TrimSpace(input.Password)
	input.MobileNumber = strings.TrimSpace(input.MobileNumber)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.EmailOrUsername = strings.TrimSpace(input.EmailOrUsername)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeFirebaseSigninRequest(input *requests.FirebaseSignin) {
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.UID = strings.TrimSpace(input.UID)
}

func SanitizeUpdateUserRequest(input *requests.UpdateUser) {
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.MobileNumber = strings.TrimSpace(input.MobileNumber)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.PhysicianID = strings.TrimSpace(input.PhysicianID)
	input.BookedTime = strings.TrimSpace(input.BookedTime)
}

func SanitizeUpdateAppointmentRequest(input *requests.UpdateAppointment) {
	input.NewTime = strings.TrimSpace(input.NewTime)
	input.Status = strings.TrimSpace(strings.ToLower(input.Status))
}

func SanitizeDemographicRequest(input *requests.Demographic) {
	input.UserName = strings.TrimSpace(input.UserName)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.TrimSpace(input.Gender)
	input.BloodGroup = strings.TrimSpace(input.BloodGroup)
	input.MaritalStatus = strings.TrimSpace(input.MaritalStatus)
	input.Occupation = strings.TrimSpace(input.Occupation)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.State = strings.TrimSpace(input.State)
	input.ZipCode = strings.TrimSpace(input.ZipCode)
	input.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
}
