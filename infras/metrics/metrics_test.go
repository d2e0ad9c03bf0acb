package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))

	return metric.GetCounter().GetValue()
}

func TestMetricsObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveContentFetch("doctors", OutcomeHit)
	m.ObserveContentFetch("doctors", OutcomeHit)
	m.ObserveContentFetch("blogs", OutcomeError)
	m.ObserveBooking("sent")
	m.ObserveCMSRequest("doctors", "200", 0.2)
	m.ObserveHTTPRequest("GET", "/v1/doctors", "200", 0.01)

	assert.InDelta(t, 2, counterValue(t, m.contentFetchTotal.WithLabelValues("doctors", OutcomeHit)), 0)
	assert.InDelta(t, 1, counterValue(t, m.contentFetchTotal.WithLabelValues("blogs", OutcomeError)), 0)
	assert.InDelta(t, 1, counterValue(t, m.bookingTotal.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, counterValue(t, m.httpRequestsTotal.WithLabelValues("GET", "/v1/doctors", "200")), 0)
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	m := New(reg)
	m.ObserveBooking("failed")

	families, err := reg.Gather()
	assert.NoError(t, err)

	names := map[string]bool{}
	for _, family := range families {
		names[family.GetName()] = true
	}

	assert.True(t, names["lifecare_booking_submissions_total"])
	assert.True(t, names["go_goroutines"])
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics

	m.ObserveContentFetch("doctors", OutcomeHit)
	m.ObserveCMSRequest("doctors", "200", 0.1)
	m.ObserveBooking("sent")
	m.ObserveHTTPRequest("GET", "/", "200", 0.1)
}
