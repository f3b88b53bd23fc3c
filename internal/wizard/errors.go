package wizard

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every error caused by what the visitor typed
// or picked.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrFullNameRequired      = fmt.Errorf("%w: full name is required", ErrInvalidInput)
	ErrEmailRequired         = fmt.Errorf("%w: email is required", ErrInvalidInput)
	ErrPhoneRequired         = fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	ErrAddressRequired       = fmt.Errorf("%w: address is required", ErrInvalidInput)
	ErrCategoryRequired      = fmt.Errorf("%w: select a course category", ErrInvalidInput)
	ErrSelectionRequired     = fmt.Errorf("%w: select a course or bundle", ErrInvalidInput)
	ErrInconsistentSelection = fmt.Errorf("%w: course does not belong to the selected category", ErrInvalidInput)
	ErrPaymentMethodRequired = fmt.Errorf("%w: select the payment method used", ErrInvalidInput)
	ErrUnknownPaymentMethod  = fmt.Errorf("%w: unknown payment method", ErrInvalidInput)
	ErrPaymentNotStarted     = fmt.Errorf("%w: start the payment timer before submitting", ErrInvalidInput)
	ErrPaymentWindowExpired  = fmt.Errorf("%w: payment window closed, start the payment again", ErrInvalidInput)
)

var (
	ErrWrongStep            = errors.New("not allowed at the current step")
	ErrNoPreviousStep       = errors.New("no previous step")
	ErrProcessing           = errors.New("payment is being processed")
	ErrRegistrationComplete = errors.New("registration already completed")
	ErrReceiptNotReady      = errors.New("receipt not ready")
	ErrClosed               = errors.New("registration closed")
)
