package constvars

const (
	// RegexMobileNumber matches 10-digit Indian mobile numbers: first digit 6-9.
	RegexMobileNumber = `^[6-9][0-9]{9}$`

	// RegexEmail requires a local part, an @, and at least one dot-separated domain segment.
	RegexEmail = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	RegexContainAtLeastOneUppercase = `[A-Z]`
	RegexContainAtLeastOneLowercase = `[a-z]`
	RegexContainAtLeastOneDigit     = `[0-9]`

	// RegexDate matches dd/mm/yyyy with day 01-31 and month 01-12. Month length
	// is not cross-checked, so 31/02/2024 passes.
	RegexDate = `^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{4}$`

	// RegexBookedTime matches dd/mm/yyyy h:mm AM/PM, meridiem case-insensitive.
	RegexBookedTime = `(?i)^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{4} (\d{1,2}):(\d{2})\s(AM|PM)$`

	RegexZipCode = `^\d{6}$`
)
