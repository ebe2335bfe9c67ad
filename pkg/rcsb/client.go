// Package rcsb is a client for the RCSB Protein Data Bank data API.
package rcsb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://data.rcsb.org/rest/v1/core"

// ErrNotFound is returned when no entry exists for a PDB id.
var ErrNotFound = eris.New("rcsb: entry not found")

// Client looks up PDB entries.
type Client interface {
	Entry(ctx context.Context, pdbID string) (*Entry, error)
}

// Entry is the subset of a PDB entry record used for receptor context.
type Entry struct {
	ID     string `json:"rcsb_id"`
	Struct struct {
		Title string `json:"title"`
	} `json:"struct"`
	Info struct {
		ResolutionCombined []float64 `json:"resolution_combined"`
		MolecularWeight    float64   `json:"molecular_weight"`
	} `json:"rcsb_entry_info"`
}

// Title returns the structure title.
func (e *Entry) Title() string {
	if e == nil {
		return ""
	}
	return e.Struct.Title
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an RCSB client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Entry(ctx context.Context, pdbID string) (*Entry, error) {
	id := strings.ToUpper(strings.TrimSpace(pdbID))
	if id == "" {
		return nil, eris.New("rcsb: empty pdb id")
	}

	u := fmt.Sprintf("%s/entry/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, eris.Wrap(err, "rcsb: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "rcsb: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "rcsb: read response")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, eris.Wrapf(ErrNotFound, "rcsb: entry %s", id)
	case resp.StatusCode != http.StatusOK:
		return nil, eris.Errorf("rcsb: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var entry Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, eris.Wrap(err, "rcsb: unmarshal response")
	}
	return &entry, nil
}
