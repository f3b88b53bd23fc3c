package domain

import (
	"time"

	"github.com/GlebRadaev/elaccess/pkg/money"
)

type Category struct {
	ID          string
	Name        string
	Description string
	BundlePrice money.Amount
}

type Course struct {
	ID         string
	CategoryID string
	Name       string
	Price      money.Amount
}

type BankAccount struct {
	Bank   string `yaml:"bank"`
	Number string `yaml:"number"`
	Name   string `yaml:"name"`
}

// Offering is what a selection resolves to: the thing being paid for.
type Offering struct {
	Name  string
	Price money.Amount
}

type Preference struct {
	VisitorID string    `db:"visitor_id"`
	DarkMode  bool      `db:"dark_mode"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ContactMessage struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Message    string
	ReceivedAt time.Time
}
