package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/pkg/money"
)

func sample() domain.Receipt {
	return domain.Receipt{
		ID:            "RCPTLOYW3V28AB12",
		TransactionID: "TRXLOYW3V28CD34",
		UserID:        "EL7K2M9QXZ",
		CreatedAt:     time.Date(2024, 5, 1, 14, 5, 0, 0, time.UTC),
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@x.com",
		CustomerPhone: "08011112222",
		Item:          "Python Basics",
		Amount:        money.FromNaira(30000),
		PaymentMethod: domain.PaymentBankTransfer,
		Status:        domain.ReceiptStatusCompleted,
	}
}

func TestRender(t *testing.T) {
	view := Render(sample())

	assert.Equal(t, View{
		ReceiptID:     "RCPTLOYW3V28AB12",
		TransactionID: "TRXLOYW3V28CD34",
		Date:          "May 1, 2024 at 2:05 PM",
		UserID:        "EL7K2M9QXZ",
		StudentName:   "Jane Doe",
		Email:         "jane@x.com",
		Phone:         "08011112222",
		Course:        "Python Basics",
		Amount:        "N30,000",
		AmountKobo:    3000000,
		PaymentMethod: "Bank Transfer",
		Status:        "Completed",
	}, view)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Print(&buf, sample()))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `onload="window.print()"`)
	assert.Contains(t, out, "RCPTLOYW3V28AB12")
	assert.Contains(t, out, "Python Basics")
	assert.Contains(t, out, "N30,000")
	assert.Contains(t, out, "Bank Transfer")
}

func TestPrint_EscapesCustomerFields(t *testing.T) {
	r := sample()
	r.CustomerName = `Jane <img src=x onerror="alert(1)">`
	var buf bytes.Buffer

	require.NoError(t, Print(&buf, r))

	assert.NotContains(t, buf.String(), "<img")
	assert.Contains(t, buf.String(), "Jane &lt;img")
}
