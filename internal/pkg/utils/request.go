package utils

import (
	"io"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

// BuildDemographicRequest reads demographic fields from a multipart form.
// The profile picture part is optional, callers validate it separately.
func BuildDemographicRequest(r *http.Request) (*requests.Demographic, error) {
	request := &requests.Demographic{
		UserName:         r.FormValue("userName"),
		FirstName:        r.FormValue("firstName"),
		LastName:         r.FormValue("lastName"),
		DateOfBirth:      r.FormValue("dob"),
		Gender:           r.FormValue("gender"),
		BloodGroup:       r.FormValue("bloodGroup"),
		MaritalStatus:    r.FormValue("maritalStatus"),
		Occupation:       r.FormValue("occupation"),
		Address:          r.FormValue("address"),
		City:             r.FormValue("city"),
		State:            r.FormValue("state"),
		ZipCode:          r.FormValue("zipCode"),
		EmergencyContact: r.FormValue("emergencyContact"),
	}

	// Malformed numerics are left at zero, struct validation reports them.
	if height := r.FormValue("height"); height != "" {
		request.Height, _ = strconv.ParseFloat(height, 64)
	}
	if weight := r.FormValue("weight"); weight != "" {
		request.Weight, _ = strconv.ParseFloat(weight, 64)
	}

	file, fileHeader, err := r.FormFile(constvars.MultipartFieldProfilePicture)
	if err == nil {
		defer file.Close()
		// Large parts are disk backed and may need multiple reads.
		picture := make([]byte, fileHeader.Size)
		if _, err := io.ReadFull(file, picture); err != nil {
			return nil, err
		}
		request.ProfilePicture = picture
		request.ProfilePictureName = fileHeader.Filename
	}

	return request, nil
}
