package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("mobile", validateMobileNumber)
	validate.RegisterValidation("zipcode", validateZipCode)
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("booked_time", validateBookedTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return IsValidPassword(fl.Field().String())
}

func validateMobileNumber(fl validator.FieldLevel) bool {
	return IsValidMobileNumber(fl.Field().String())
}

func validateZipCode(fl validator.FieldLevel) bool {
	return IsValidZipCode(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}

func validateBookedTime(fl validator.FieldLevel) bool {
	return IsValidBookedTime(fl.Field().String())
}
