//go:build unit

package metrics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RedemptionCreated(uuid.New(), 350)
	m.RedemptionCreated(uuid.New(), 150)
	m.StatusChanged("ACTIVO", "CANCELADO")
	m.PointsRefunded(350)
	m.ObserveHTTPRequest("POST", "/api/canjes", "201", 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.redemptionsCreated))
	assert.Equal(t, 500.0, testutil.ToFloat64(m.pointsRedeemed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusChanges.WithLabelValues("ACTIVO", "CANCELADO")))
	assert.Equal(t, 350.0, testutil.ToFloat64(m.pointsRefunded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/canjes", "201")))
}
