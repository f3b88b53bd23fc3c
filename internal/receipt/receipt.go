package receipt

import (
	"fmt"
	"html/template"
	"io"

	"github.com/GlebRadaev/elaccess/internal/domain"
)

const dateLayout = "January 2, 2006 at 3:04 PM"

// View is a receipt prepared for display.
type View struct {
	ReceiptID     string `json:"receipt_id"`
	TransactionID string `json:"transaction_id"`
	Date          string `json:"date"`
	UserID        string `json:"user_id"`
	StudentName   string `json:"student_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Course        string `json:"course"`
	Amount        string `json:"amount"`
	AmountKobo    int64  `json:"amount_kobo"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

func Render(r domain.Receipt) View {
	return View{
		ReceiptID:     r.ID,
		TransactionID: r.TransactionID,
		Date:          r.CreatedAt.Format(dateLayout),
		UserID:        r.UserID,
		StudentName:   r.CustomerName,
		Email:         r.CustomerEmail,
		Phone:         r.CustomerPhone,
		Course:        r.Item,
		Amount:        r.Amount.String(),
		AmountKobo:    r.Amount.Kobo(),
		PaymentMethod: r.PaymentMethod.Label(),
		Status:        string(r.Status),
	}
}

var printable = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Receipt {{.ReceiptID}}</title>
<style>
body { font-family: Arial, sans-serif; max-width: 640px; margin: 40px auto; color: #1f2937; }
h1 { font-size: 22px; margin-bottom: 4px; }
.muted { color: #6b7280; font-size: 13px; }
table { width: 100%; border-collapse: collapse; margin-top: 24px; }
td { padding: 8px 0; border-bottom: 1px solid #e5e7eb; }
td:last-child { text-align: right; font-weight: 600; }
.status { color: #059669; }
</style>
</head>
<body onload="window.print()">
<h1>EL ACCESS Payment Receipt</h1>
<p class="muted">Receipt {{.ReceiptID}} &middot; {{.Date}}</p>
<table>
<tr><td>Transaction ID</td><td>{{.TransactionID}}</td></tr>
<tr><td>Student ID</td><td>{{.UserID}}</td></tr>
<tr><td>Student Name</td><td>{{.StudentName}}</td></tr>
<tr><td>Email</td><td>{{.Email}}</td></tr>
<tr><td>Phone</td><td>{{.Phone}}</td></tr>
<tr><td>Course</td><td>{{.Course}}</td></tr>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>Payment Method</td><td>{{.PaymentMethod}}</td></tr>
<tr><td>Status</td><td class="status">{{.Status}}</td></tr>
</table>
</body>
</html>
`))

// Print writes a standalone HTML document that opens the print dialog
// once loaded.
func Print(w io.Writer, r domain.Receipt) error {
	if err := printable.Execute(w, Render(r)); err != nil {
		return fmt.Errorf("can't render receipt %s: %w", r.ID, err)
	}
	return nil
}
