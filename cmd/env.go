package main

import (
	"net/http"
	"time"

	"github.com/sells-group/compound-cli/internal/monitoring"
	"github.com/sells-group/compound-cli/internal/predict"
	"github.com/sells-group/compound-cli/pkg/pubchem"
	"github.com/sells-group/compound-cli/pkg/rcsb"
)

// serviceEnv holds the upstream clients and the prediction service built
// from the loaded config.
type serviceEnv struct {
	PubChem pubchem.Client
	RCSB    rcsb.Client
	Metrics *monitoring.Metrics
	Service *predict.Service
}

// initService validates the config for mode and wires the clients.
func initService(mode string) (*serviceEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	pc := pubchem.NewClient(
		pubchem.WithBaseURL(cfg.PubChem.BaseURL),
		pubchem.WithHTTPClient(newHTTPClient(cfg.PubChem.TimeoutSecs)),
		pubchem.WithUserAgent(cfg.PubChem.UserAgent),
		pubchem.WithRateLimit(cfg.PubChem.RateLimit, cfg.PubChem.Burst),
	)

	var rcsbOpts []rcsb.Option
	if cfg.RCSB.BaseURL != "" {
		rcsbOpts = append(rcsbOpts, rcsb.WithBaseURL(cfg.RCSB.BaseURL))
	}
	rcsbOpts = append(rcsbOpts, rcsb.WithHTTPClient(newHTTPClient(cfg.RCSB.TimeoutSecs)))
	rc := rcsb.NewClient(rcsbOpts...)

	m := monitoring.NewMetrics()

	return &serviceEnv{
		PubChem: pc,
		RCSB:    rc,
		Metrics: m,
		Service: predict.NewService(pc, rc, predict.WithMetrics(m)),
	}, nil
}

func newHTTPClient(timeoutSecs int) *http.Client {
	if timeoutSecs <= 0 {
		timeoutSecs = 30
	}
	return &http.Client{
		Timeout: time.Duration(timeoutSecs) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
