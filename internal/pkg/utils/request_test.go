package utils

import (
	"bytes"
	"medibook-service/internal/pkg/constvars"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDemographicRequest(t *testing.T) {
	picture := bytes.Repeat([]byte{0xAB}, 64*1024)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	assert.NoError(t, writer.WriteField("firstName", "Jane"))
	assert.NoError(t, writer.WriteField("height", "167.5"))
	assert.NoError(t, writer.WriteField("weight", "not-a-number"))
	part, err := writer.CreateFormFile(constvars.MultipartFieldProfilePicture, "me.png")
	assert.NoError(t, err)
	_, err = part.Write(picture)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/demographics", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	// A tiny memory limit pushes the picture part onto disk, where a
	// single read may return fewer bytes than the part size.
	assert.NoError(t, request.ParseMultipartForm(1024))

	result, err := BuildDemographicRequest(request)

	assert.NoError(t, err)
	assert.Equal(t, "Jane", result.FirstName)
	assert.Equal(t, 167.5, result.Height)
	assert.Zero(t, result.Weight)
	assert.Equal(t, "me.png", result.ProfilePictureName)
	assert.Equal(t, picture, result.ProfilePicture)
}
