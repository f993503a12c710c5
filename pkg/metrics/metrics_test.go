package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorRecords(t *testing.T) {
	c := New("luvo_test")

	c.RecordReading("three")
	c.RecordReading("three")
	c.RecordInterpretation(OutcomeOK, time.Second)
	c.RecordRequest("GET", "/api/cards", "200", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Readings.WithLabelValues("three")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Interpretations.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/cards", "200")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := New("luvo_test")
	c.RecordReading("single")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `luvo_test_readings_total{spread="single"} 1`)
}
