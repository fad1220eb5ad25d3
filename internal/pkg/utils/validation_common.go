package utils

import (
	"regexp"
	"strings"

	"medibook-service/internal/pkg/constvars"
)

var (
	regexMobileNumber = regexp.MustCompile(constvars.RegexMobileNumber)
	regexEmail        = regexp.MustCompile(constvars.RegexEmail)
	regexUppercase    = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	regexLowercase    = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	regexDigit        = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	regexDate         = regexp.MustCompile(constvars.RegexDate)
	regexBookedTime   = regexp.MustCompile(constvars.RegexBookedTime)
	regexZipCode      = regexp.MustCompile(constvars.RegexZipCode)
)

func IsValidMobileNumber(mobileNumber string) bool {
	return regexMobileNumber.MatchString(mobileNumber)
}

func IsValidEmail(email string) bool {
	return regexEmail.MatchString(email)
}

// IsValidPassword requires at least 8 characters with one uppercase letter,
// one lowercase letter and one digit.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return regexUppercase.MatchString(password) &&
		regexLowercase.MatchString(password) &&
		regexDigit.MatchString(password)
}

func IsValidDate(date string) bool {
	return regexDate.MatchString(date)
}

func IsValidBookedTime(bookedTime string) bool {
	return regexBookedTime.MatchString(bookedTime)
}

func IsValidZipCode(zipCode string) bool {
	return regexZipCode.MatchString(zipCode)
}

func IsAllowedImageExtension(filename string, allowedFormats []string) bool {
	lowered := strings.ToLower(filename)
	for _, format := range allowedFormats {
		if strings.HasSuffix(lowered, format) {
			return true
		}
	}
	return false
}

func IsPDFFilename(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
