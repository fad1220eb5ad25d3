package responses

type ReportResponse struct {
	ID         string `json:"id"`
	FileName   string `json:"filename"`
	SizeBytes  int64  `json:"sizeBytes,omitempty"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}
