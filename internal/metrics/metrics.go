package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RegistrationsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "elaccess_registrations_started_total",
			Help: "Number of registration sessions created",
		},
	)

	ActiveRegistrations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "elaccess_registrations_active",
			Help: "Number of live registration sessions",
		},
	)

	ReceiptsIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elaccess_receipts_issued_total",
			Help: "Number of receipts issued by payment method",
		},
		[]string{"method"},
	)

	PaymentWindowsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "elaccess_payment_windows_expired_total",
			Help: "Number of payment windows that closed before submission",
		},
	)

	SessionsSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "elaccess_sessions_swept_total",
			Help: "Number of idle registration sessions closed by the sweeper",
		},
	)

	ContactMessagesReceived = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "elaccess_contact_messages_received_total",
			Help: "Number of contact form messages accepted",
		},
	)

	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "elaccess_events_failed_total",
			Help: "Number of events that could not be published by event type",
		},
		[]string{"event"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		RegistrationsStarted,
		ActiveRegistrations,
		ReceiptsIssued,
		PaymentWindowsExpired,
		SessionsSwept,
		ContactMessagesReceived,
		EventsFailed,
	)
}
