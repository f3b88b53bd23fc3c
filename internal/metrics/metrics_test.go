package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	Register(reg)
	ReceiptsIssued.WithLabelValues("ussd").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	issued := 0.0
	for _, f := range families {
		if f.GetName() != "elaccess_receipts_issued_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			issued += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), issued)
	assert.Panics(t, func() { Register(reg) })
}
