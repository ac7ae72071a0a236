package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersCollectors(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterTimerCommands.WithLabelValues("start", "ok").Inc()
	m.CounterTimerCommands.WithLabelValues("start", "ok").Inc()
	m.CounterTimerCommands.WithLabelValues("start", "rejected").Inc()
	m.GaugeRunningTickSource.Inc()
	m.CounterWorkouts.Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterTimerCommands.WithLabelValues("start", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GaugeRunningTickSource))

	count, err := testutil.GatherAndCount(reg, "backend_test_server_timer_commands")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSetupPrometheus(t *testing.T) {
	reg := SetupPrometheus("backend", "abc123")
	require.NotNil(t, reg)

	m := NewManager("backend", "main", reg)
	m.GaugeLifeSignal.Set(1)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestSetupPrometheus_ServiceInfo(t *testing.T) {
	reg := SetupPrometheus("backend", "abc123")

	expected := `
# HELP backend_service_info Always 1, labeled with the running service version
# TYPE backend_service_info gauge
backend_service_info{version="abc123"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "backend_service_info"))
}
