package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/compound-cli/internal/config"
)

func TestChecker_RunStopsOnCancel(t *testing.T) {
	collector := NewCollector(NewMetrics())
	cfg := config.MonitoringConfig{
		CheckIntervalSecs:    1,
		FailureRateThreshold: 0.10,
		MinSamples:           1,
	}
	checker := NewChecker(collector, NewAlerter(cfg), cfg)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		checker.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Checker.Run did not stop after context cancellation")
	}
}

func TestChecker_Interval(t *testing.T) {
	alerter := NewAlerter(config.MonitoringConfig{})
	collector := NewCollector(NewMetrics())

	assert.Equal(t, defaultCheckInterval,
		NewChecker(collector, alerter, config.MonitoringConfig{}).interval())
	assert.Equal(t, defaultCheckInterval,
		NewChecker(collector, alerter, config.MonitoringConfig{CheckIntervalSecs: -1}).interval())
	assert.Equal(t, 30*time.Second,
		NewChecker(collector, alerter, config.MonitoringConfig{CheckIntervalSecs: 30}).interval())

	// Start and immediately cancel to verify it doesn't panic.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	NewChecker(collector, alerter, config.MonitoringConfig{}).Run(ctx)
}

func TestChecker_CheckSendsAlert(t *testing.T) {
	var received atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var alert Alert
		if err := json.NewDecoder(r.Body).Decode(&alert); err == nil && alert.Type == AlertUpstreamFailureRate {
			received.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	m := NewMetrics()
	collector := NewCollector(m)
	cfg := config.MonitoringConfig{
		WebhookURL:           ts.URL,
		FailureRateThreshold: 0.5,
		MinSamples:           2,
	}
	checker := NewChecker(collector, NewAlerter(cfg), cfg)

	_, err := collector.Collect(context.Background())
	assert.NoError(t, err)

	m.ObserveUpstream("pubchem", "properties", OutcomeError)
	m.ObserveUpstream("pubchem", "properties", OutcomeError)
	m.ObserveUpstream("pubchem", "synonym", OutcomeOK)

	checker.check(context.Background(), testLogger())
	assert.Equal(t, int32(1), received.Load())
}

func TestChecker_OnlyCurrentWindowAlerts(t *testing.T) {
	var received atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	m := NewMetrics()
	collector := NewCollector(m)
	cfg := config.MonitoringConfig{
		WebhookURL:           ts.URL,
		FailureRateThreshold: 0.5,
		MinSamples:           2,
	}
	checker := NewChecker(collector, NewAlerter(cfg), cfg)

	_, err := collector.Collect(context.Background())
	assert.NoError(t, err)

	m.ObserveUpstream("rcsb", "entry", OutcomeError)
	m.ObserveUpstream("rcsb", "entry", OutcomeError)
	checker.check(context.Background(), testLogger())
	assert.Equal(t, int32(1), received.Load())

	// The failed calls belong to the previous window.
	m.ObserveUpstream("rcsb", "entry", OutcomeOK)
	m.ObserveUpstream("rcsb", "entry", OutcomeOK)
	checker.check(context.Background(), testLogger())
	assert.Equal(t, int32(1), received.Load())
}
