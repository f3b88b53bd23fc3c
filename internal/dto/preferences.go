package dto

type PreferenceDTO struct {
	DarkMode bool `json:"dark_mode" example:"true"`
}

type UpdatePreferenceRequestDTO struct {
	DarkMode *bool `json:"dark_mode" example:"true"`
}
