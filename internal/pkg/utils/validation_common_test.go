package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMobileNumber(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid number starting with 9", input: "9876543210", expected: true},
		{name: "valid number starting with 6", input: "6123456789", expected: true},
		{name: "starts with 5", input: "5876543210", expected: false},
		{name: "too short", input: "987654321", expected: false},
		{name: "too long", input: "98765432101", expected: false},
		{name: "contains letters", input: "98765abc10", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidMobileNumber(tc.input))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid email", input: "jane@example.com", expected: true},
		{name: "subdomain", input: "jane@mail.example.co", expected: true},
		{name: "missing at", input: "jane.example.com", expected: false},
		{name: "missing domain dot", input: "jane@example", expected: false},
		{name: "contains whitespace", input: "jane doe@example.com", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidEmail(tc.input))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "meets all rules", input: "Password1", expected: true},
		{name: "too short", input: "Pass1", expected: false},
		{name: "no uppercase", input: "password1", expected: false},
		{name: "no lowercase", input: "PASSWORD1", expected: false},
		{name: "no digit", input: "Passwords", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidPassword(tc.input))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid date", input: "15/08/1990", expected: true},
		{name: "first of month", input: "01/01/2000", expected: true},
		{name: "day out of range", input: "32/01/2000", expected: false},
		{name: "month out of range", input: "15/13/2000", expected: false},
		{name: "wrong separator", input: "15-08-1990", expected: false},
		{name: "iso format", input: "1990-08-15", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidDate(tc.input))
		})
	}
}

func TestIsValidBookedTime(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid morning slot", input: "25/12/2026 9:30 AM", expected: true},
		{name: "valid evening slot", input: "01/06/2026 11:00 PM", expected: true},
		{name: "lowercase meridiem", input: "25/12/2026 9:30 am", expected: true},
		{name: "missing meridiem", input: "25/12/2026 9:30", expected: false},
		{name: "day out of range", input: "32/12/2026 9:30 AM", expected: false},
		{name: "date only", input: "25/12/2026", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidBookedTime(tc.input))
		})
	}
}

func TestIsValidZipCode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "valid zip", input: "560001", expected: true},
		{name: "too short", input: "56001", expected: false},
		{name: "too long", input: "5600011", expected: false},
		{name: "contains letters", input: "56O001", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidZipCode(tc.input))
		})
	}
}

func TestIsAllowedImageExtension(t *testing.T) {
	allowed := []string{".png", ".jpg", ".jpeg", ".gif"}

	assert.True(t, IsAllowedImageExtension("avatar.png", allowed))
	assert.True(t, IsAllowedImageExtension("AVATAR.JPG", allowed))
	assert.False(t, IsAllowedImageExtension("avatar.pdf", allowed))
	assert.False(t, IsAllowedImageExtension("avatar", allowed))
}

func TestIsPDFFilename(t *testing.T) {
	assert.True(t, IsPDFFilename("report.pdf"))
	assert.True(t, IsPDFFilename("REPORT.PDF"))
	assert.False(t, IsPDFFilename("report.docx"))
}
