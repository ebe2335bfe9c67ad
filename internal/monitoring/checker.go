package monitoring

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/compound-cli/internal/config"
)

// defaultCheckInterval applies when the config leaves the interval unset.
const defaultCheckInterval = 5 * time.Minute

// Checker evaluates the API's request and PubChem/RCSB call counters on a
// fixed interval and posts any breached thresholds to the alert webhook.
type Checker struct {
	collector *Collector
	alerter   *Alerter
	cfg       config.MonitoringConfig
}

// NewChecker wires a collector and alerter into a Checker.
func NewChecker(collector *Collector, alerter *Alerter, cfg config.MonitoringConfig) *Checker {
	return &Checker{
		collector: collector,
		alerter:   alerter,
		cfg:       cfg,
	}
}

// interval is the length of one evaluation window.
func (c *Checker) interval() time.Duration {
	if c.cfg.CheckIntervalSecs <= 0 {
		return defaultCheckInterval
	}
	return time.Duration(c.cfg.CheckIntervalSecs) * time.Second
}

// Run blocks until ctx is cancelled. Failure rates are judged per window:
// a snapshot holds only the predictions and upstream calls made since the
// previous tick, so an outage that has cleared stops alerting one interval
// later instead of lingering in lifetime totals.
func (c *Checker) Run(ctx context.Context) {
	every := c.interval()
	log := zap.L().With(zap.String("component", "monitoring.checker"))
	log.Info("monitoring: checker started",
		zap.Duration("window", every),
		zap.Float64("failure_rate_threshold", c.cfg.FailureRateThreshold),
		zap.Int("min_samples", c.cfg.MinSamples),
	)

	// Discard traffic from before startup; the first window opens here.
	if _, err := c.collector.Collect(ctx); err != nil {
		log.Error("monitoring: baseline collect failed", zap.Error(err))
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("monitoring: checker stopped")
			return
		case <-ticker.C:
			c.check(ctx, log)
		}
	}
}

// check closes the current window and alerts on it.
func (c *Checker) check(ctx context.Context, log *zap.Logger) {
	snap, err := c.collector.Collect(ctx)
	if err != nil {
		log.Error("monitoring: collect failed", zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.Duration("window", snap.Window),
		zap.Int("requests", snap.Requests),
		zap.Float64("server_error_rate", snap.ServerErrorRate),
		zap.Int("upstream_calls", snap.UpstreamCalls),
		zap.Float64("upstream_fail_rate", snap.UpstreamFailRate),
	}

	alerts := c.alerter.Evaluate(snap)
	if len(alerts) == 0 {
		log.Debug("monitoring: window healthy", fields...)
		return
	}

	sent := c.alerter.SendAlerts(ctx, alerts)
	log.Warn("monitoring: thresholds breached",
		append(fields,
			zap.Int("alerts", len(alerts)),
			zap.Int("delivered", sent),
		)...,
	)
}
