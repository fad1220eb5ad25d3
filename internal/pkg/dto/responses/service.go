package responses

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price,omitempty"`
	DurationMin int    `json:"durationMinutes,omitempty"`
}
