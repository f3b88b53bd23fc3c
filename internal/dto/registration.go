package dto

import "github.com/GlebRadaev/elaccess/internal/receipt"

const (
	OfferingCourse = "course"
	OfferingBundle = "bundle"
)

type CreateRegistrationResponseDTO struct {
	SessionID string               `json:"session_id" example:"7f9c2f4e-5b7a-4c39-9a51-5d1c0b2d8e11"`
	ExpiresAt string               `json:"expires_at" example:"2024-05-02T10:30:00Z"`
	State     RegistrationStateDTO `json:"state"`
}

type PersonalInfoDTO struct {
	FullName string `json:"full_name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@x.com"`
	Phone    string `json:"phone" example:"08011112222"`
	Address  string `json:"address,omitempty" example:"12 Allen Avenue, Ikeja"`
}

type CategoryRequestDTO struct {
	CategoryID string `json:"category_id" example:"python"`
}

type OfferingDTO struct {
	Type string `json:"type" example:"course" enums:"course,bundle"`
	ID   string `json:"id" example:"python-basics"`
}

type PaymentMethodRequestDTO struct {
	Method string `json:"method" example:"bank_transfer" enums:"bank_transfer,bank_deposit,mobile_banking,ussd"`
}

type PaymentDTO struct {
	UserID           string `json:"user_id" example:"EL7K2M9QXZ"`
	Method           string `json:"method,omitempty" example:"bank_transfer"`
	TimerStarted     bool   `json:"timer_started"`
	TimerExpired     bool   `json:"timer_expired"`
	Processing       bool   `json:"processing"`
	Progress         int    `json:"progress" example:"40"`
	RemainingSeconds int    `json:"remaining_seconds" example:"900"`
	Countdown        string `json:"countdown" example:"15:00"`
	Urgency          string `json:"urgency" example:"comfortable" enums:"comfortable,warning,critical"`
}

type RegistrationStateDTO struct {
	Step         string          `json:"step" example:"personal" enums:"personal,course,payment,confirmation"`
	PersonalInfo PersonalInfoDTO `json:"personal_info"`
	CategoryID   string          `json:"category_id,omitempty" example:"python"`
	Offering     *OfferingDTO    `json:"offering,omitempty"`
	Payment      PaymentDTO      `json:"payment"`
	Notice       string          `json:"notice,omitempty" example:"payment window closed"`
	Receipt      *receipt.View   `json:"receipt,omitempty"`
}
