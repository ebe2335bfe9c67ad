package monitoring

import (
	"context"
	"strings"
	"sync"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/rotisserie/eris"
)

// MetricsSnapshot holds request and upstream counts for one check window.
type MetricsSnapshot struct {
	// HTTP metrics.
	Requests        int     `json:"requests"`
	ServerErrors    int     `json:"server_errors"`
	ServerErrorRate float64 `json:"server_error_rate"`

	// Upstream metrics. Not-found responses are not failures.
	UpstreamCalls    int     `json:"upstream_calls"`
	UpstreamFailures int     `json:"upstream_failures"`
	UpstreamFailRate float64 `json:"upstream_fail_rate"`

	// Metadata.
	Window      time.Duration `json:"window"`
	CollectedAt time.Time     `json:"collected_at"`
}

// Collector turns the cumulative Prometheus counters into per-window
// snapshots. Each Collect covers the period since the previous one.
type Collector struct {
	metrics *Metrics

	mu   sync.Mutex
	last *MetricsSnapshot
	now  func() time.Time
}

// NewCollector creates a collector over m.
func NewCollector(m *Metrics) *Collector {
	return &Collector{metrics: m, now: time.Now}
}

// Collect returns the counts accumulated since the previous Collect call.
func (c *Collector) Collect(_ context.Context) (*MetricsSnapshot, error) {
	total, err := c.totals()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snap := *total
	if c.last != nil {
		snap.Requests -= c.last.Requests
		snap.ServerErrors -= c.last.ServerErrors
		snap.UpstreamCalls -= c.last.UpstreamCalls
		snap.UpstreamFailures -= c.last.UpstreamFailures
		snap.Window = total.CollectedAt.Sub(c.last.CollectedAt)
	}
	c.last = total

	if snap.Requests > 0 {
		snap.ServerErrorRate = float64(snap.ServerErrors) / float64(snap.Requests)
	}
	if snap.UpstreamCalls > 0 {
		snap.UpstreamFailRate = float64(snap.UpstreamFailures) / float64(snap.UpstreamCalls)
	}
	return &snap, nil
}

// totals reads cumulative counts from the registry.
func (c *Collector) totals() (*MetricsSnapshot, error) {
	reg := c.metrics.Registry()
	if reg == nil {
		return nil, eris.New("monitoring: no metrics registry")
	}

	families, err := reg.Gather()
	if err != nil {
		return nil, eris.Wrap(err, "monitoring: gather metrics")
	}

	snap := &MetricsSnapshot{CollectedAt: c.now().UTC()}
	for _, mf := range families {
		switch mf.GetName() {
		case metricRequests:
			for _, m := range mf.GetMetric() {
				n := int(m.GetCounter().GetValue())
				snap.Requests += n
				if strings.HasPrefix(label(m, "status"), "5") {
					snap.ServerErrors += n
				}
			}
		case metricUpstream:
			for _, m := range mf.GetMetric() {
				n := int(m.GetCounter().GetValue())
				snap.UpstreamCalls += n
				if label(m, "outcome") == OutcomeError {
					snap.UpstreamFailures += n
				}
			}
		}
	}
	return snap, nil
}

func label(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
