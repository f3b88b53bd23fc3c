package domain

import (
	"time"

	"github.com/GlebRadaev/elaccess/pkg/money"
)

type Step string

const (
	StepPersonalInfo    Step = "personal"
	StepCourseSelection Step = "course"
	StepPayment         Step = "payment"
	StepConfirmation    Step = "confirmation"
)

type PaymentMethod string

const (
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
	PaymentBankDeposit   PaymentMethod = "bank_deposit"
	PaymentMobileBanking PaymentMethod = "mobile_banking"
	PaymentUSSD          PaymentMethod = "ussd"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentBankTransfer:  "Bank Transfer",
	PaymentBankDeposit:   "Bank Deposit",
	PaymentMobileBanking: "Mobile Banking",
	PaymentUSSD:          "USSD Transfer",
}

func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

// Label is the human readable name; unknown methods are shown as is.
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

type ReceiptStatus string

const ReceiptStatusCompleted ReceiptStatus = "Completed"

type PersonalInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
}

// RegistrationDraft is the form data collected so far.
type RegistrationDraft struct {
	PersonalInfo
	CategoryID    string
	Selection     Selection
	PaymentMethod PaymentMethod
}

type PaymentSession struct {
	UserID       string
	TimerStarted bool
	TimerExpired bool
	Processing   bool
	Progress     int
}

type Receipt struct {
	ID            string
	TransactionID string
	UserID        string
	CreatedAt     time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Item          string
	Amount        money.Amount
	PaymentMethod PaymentMethod
	Status        ReceiptStatus
}

// WizardState is a point-in-time copy of a registration wizard.
type WizardState struct {
	Step      Step
	Draft     RegistrationDraft
	Payment   PaymentSession
	Remaining time.Duration
	Countdown string
	Urgency   string
	Notice    string
	Receipt   *Receipt
}
