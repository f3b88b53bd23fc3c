package dto

type ContactRequestDTO struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@x.com"`
	Phone   string `json:"phone,omitempty" example:"08011112222"`
	Message string `json:"message" example:"When does the next Python cohort start?"`
}

type ContactResponseDTO struct {
	ID      string `json:"id" example:"4d8f0a1e-7c3b-4e2a-9f5d-6b1c2a3e4f50"`
	Message string `json:"message" example:"Thank you for reaching out! We'll get back to you soon."`
}
