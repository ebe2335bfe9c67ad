package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/compound-cli/internal/config"
)

// AlertType identifies the kind of alert.
type AlertType string

const (
	AlertUpstreamFailureRate AlertType = "upstream_failure_rate"
	AlertServerErrorRate     AlertType = "server_error_rate"
)

// Alert represents a single alert to be sent.
type Alert struct {
	Type      AlertType      `json:"type"`
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Alerter evaluates a MetricsSnapshot against configured thresholds
// and sends alerts via webhook when thresholds are breached.
type Alerter struct {
	cfg    config.MonitoringConfig
	client *http.Client
}

// NewAlerter creates a new Alerter with the given monitoring config.
func NewAlerter(cfg config.MonitoringConfig) *Alerter {
	return &Alerter{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Evaluate checks the snapshot against thresholds and returns any alerts.
// Windows with fewer than MinSamples observations are ignored.
func (a *Alerter) Evaluate(snap *MetricsSnapshot) []Alert {
	var alerts []Alert
	now := time.Now().UTC()
	minSamples := a.cfg.MinSamples
	if minSamples < 1 {
		minSamples = 1
	}

	if snap.UpstreamCalls >= minSamples && snap.UpstreamFailRate > a.cfg.FailureRateThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertUpstreamFailureRate,
			Severity: "high",
			Message: fmt.Sprintf(
				"Upstream failure rate %.1f%% exceeds threshold %.1f%% (%d failed / %d calls in last %s)",
				snap.UpstreamFailRate*100, a.cfg.FailureRateThreshold*100,
				snap.UpstreamFailures, snap.UpstreamCalls, snap.Window,
			),
			Details: map[string]any{
				"failure_rate": snap.UpstreamFailRate,
				"threshold":    a.cfg.FailureRateThreshold,
				"failed":       snap.UpstreamFailures,
				"calls":        snap.UpstreamCalls,
			},
			Timestamp: now,
		})
	}

	if snap.Requests >= minSamples && snap.ServerErrorRate > a.cfg.FailureRateThreshold {
		alerts = append(alerts, Alert{
			Type:     AlertServerErrorRate,
			Severity: "high",
			Message: fmt.Sprintf(
				"Server error rate %.1f%% exceeds threshold %.1f%% (%d errors / %d requests in last %s)",
				snap.ServerErrorRate*100, a.cfg.FailureRateThreshold*100,
				snap.ServerErrors, snap.Requests, snap.Window,
			),
			Details: map[string]any{
				"error_rate": snap.ServerErrorRate,
				"threshold":  a.cfg.FailureRateThreshold,
				"errors":     snap.ServerErrors,
				"requests":   snap.Requests,
			},
			Timestamp: now,
		})
	}

	return alerts
}

// SendAlerts delivers alerts to the configured webhook URL.
// Returns the number of alerts successfully sent.
func (a *Alerter) SendAlerts(ctx context.Context, alerts []Alert) int {
	if a.cfg.WebhookURL == "" || len(alerts) == 0 {
		return 0
	}

	sent := 0
	for _, alert := range alerts {
		if err := a.sendWebhook(ctx, alert); err != nil {
			zap.L().Error("monitoring: failed to send alert",
				zap.String("type", string(alert.Type)),
				zap.Error(err),
			)
			continue
		}
		zap.L().Info("monitoring: alert sent",
			zap.String("type", string(alert.Type)),
			zap.String("severity", alert.Severity),
		)
		sent++
	}
	return sent
}

// sendWebhook posts a single alert to the webhook URL.
func (a *Alerter) sendWebhook(ctx context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return eris.Wrap(err, "monitoring: marshal alert")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "monitoring: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return eris.Wrap(err, "monitoring: webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return eris.Errorf("monitoring: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
