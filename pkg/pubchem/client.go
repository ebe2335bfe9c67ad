// Package pubchem is a client for the PubChem PUG REST API.
package pubchem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	defaultUserAgent = "compound-cli/1.0"

	// PubChem asks clients to stay at or below 5 requests per second.
	defaultRate  = 5
	defaultBurst = 5
)

// BasicProperties is the property list requested for every compound.
var BasicProperties = []string{
	"MolecularWeight",
	"XLogP",
	"HBondDonorCount",
	"HBondAcceptorCount",
	"RotatableBondCount",
	"MolecularFormula",
	"IUPACName",
	"InChIKey",
}

// ComputedProperties are merged into the basic set when available.
var ComputedProperties = []string{"Volume3D", "Complexity"}

// ErrNotFound is returned when PubChem has no record for the request.
var ErrNotFound = eris.New("pubchem: not found")

// StatusError reports a non-200 response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pubchem: unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err means PubChem has no matching record. PUG
// REST answers unknown names and malformed identifiers with 404 or 400.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if eris.Is(err, ErrNotFound) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusNotFound || se.StatusCode == http.StatusBadRequest
	}
	return false
}

// Client fetches compound records from PubChem.
type Client interface {
	// Properties returns the basic property record for cid, merged with the
	// compound description and computed properties when those are available.
	Properties(ctx context.Context, cid string) (map[string]any, error)
	// Synonym returns the first listed synonym for cid.
	Synonym(ctx context.Context, cid string) (string, error)
	// Property returns a single string property (e.g. "CanonicalSMILES").
	Property(ctx context.Context, cid, name string) (string, error)
	// AssaySummaries returns the bioassay summary rows for cid.
	AssaySummaries(ctx context.Context, cid string) ([]AssaySummary, error)
	// ProteinTargets returns the protein targets recorded for cid.
	ProteinTargets(ctx context.Context, cid string) ([]ProteinTarget, error)
	// Pathways returns the pathways recorded for cid.
	Pathways(ctx context.Context, cid string) ([]Pathway, error)
	// CIDsByName looks up compound ids by name. Broad matches on any word.
	CIDsByName(ctx context.Context, name string, broad bool) ([]int64, error)
	// CIDsByFormula looks up compound ids by exact molecular formula.
	CIDsByFormula(ctx context.Context, formula string) ([]int64, error)
}

// AssaySummary is one row of a compound's bioassay summary.
type AssaySummary struct {
	AID                int64  `json:"AID,omitempty"`
	TargetName         string `json:"TargetName"`
	BioActivitySummary string `json:"BioActivitySummary"`
}

// ProteinTarget is one protein target of a compound.
type ProteinTarget struct {
	ProteinName     string `json:"ProteinName"`
	InteractionType string `json:"InteractionType"`
}

// Pathway is one pathway a compound participates in.
type Pathway struct {
	PathwayName string `json:"PathwayName"`
}

type propertyTable struct {
	PropertyTable struct {
		Properties []map[string]any `json:"Properties"`
	} `json:"PropertyTable"`
}

type informationList struct {
	InformationList struct {
		Information []struct {
			Description string   `json:"Description"`
			Synonym     []string `json:"Synonym"`
		} `json:"Information"`
	} `json:"InformationList"`
}

type identifierList struct {
	IdentifierList struct {
		CID []int64 `json:"CID"`
	} `json:"IdentifierList"`
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

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *httpClient) {
		c.userAgent = ua
	}
}

// WithRateLimit overrides the request rate (per second) and burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

type httpClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates a PubChem client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(defaultRate, defaultBurst),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Properties(ctx context.Context, cid string) (map[string]any, error) {
	props, err := c.propertyRow(ctx, cid, BasicProperties)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return nil, eris.Wrapf(ErrNotFound, "pubchem: properties for %s (status %d)", cid, se.StatusCode)
		}
		return nil, eris.Wrapf(err, "pubchem: properties for %s", cid)
	}

	if desc, err := c.description(ctx, cid); err != nil {
		zap.L().Warn("pubchem: description unavailable", zap.String("cid", cid), zap.Error(err))
	} else if desc != "" {
		props["Description"] = desc
	}

	computed, err := c.propertyRow(ctx, cid, ComputedProperties)
	if err != nil {
		zap.L().Warn("pubchem: computed properties unavailable", zap.String("cid", cid), zap.Error(err))
	} else {
		for k, v := range computed {
			props[k] = v
		}
	}

	return props, nil
}

func (c *httpClient) propertyRow(ctx context.Context, cid string, names []string) (map[string]any, error) {
	var table propertyTable
	path := fmt.Sprintf("/compound/cid/%s/property/%s/JSON", url.PathEscape(cid), strings.Join(names, ","))
	if err := c.getJSON(ctx, path, nil, &table); err != nil {
		return nil, err
	}
	rows := table.PropertyTable.Properties
	if len(rows) == 0 || rows[0] == nil {
		return nil, eris.Wrapf(ErrNotFound, "pubchem: no property rows for %s", cid)
	}
	return rows[0], nil
}

func (c *httpClient) description(ctx context.Context, cid string) (string, error) {
	var info informationList
	path := fmt.Sprintf("/compound/cid/%s/description/JSON", url.PathEscape(cid))
	if err := c.getJSON(ctx, path, nil, &info); err != nil {
		return "", err
	}
	for _, item := range info.InformationList.Information {
		if item.Description != "" {
			return item.Description, nil
		}
	}
	return "", nil
}

func (c *httpClient) Synonym(ctx context.Context, cid string) (string, error) {
	var info informationList
	path := fmt.Sprintf("/compound/cid/%s/synonyms/JSON", url.PathEscape(cid))
	if err := c.getJSON(ctx, path, nil, &info); err != nil {
		return "", err
	}
	items := info.InformationList.Information
	if len(items) == 0 || len(items[0].Synonym) == 0 {
		return "", eris.Wrapf(ErrNotFound, "pubchem: no synonyms for %s", cid)
	}
	return items[0].Synonym[0], nil
}

func (c *httpClient) Property(ctx context.Context, cid, name string) (string, error) {
	row, err := c.propertyRow(ctx, cid, []string{name})
	if err != nil {
		return "", err
	}
	v, ok := row[name]
	if !ok || v == nil {
		return "", eris.Wrapf(ErrNotFound, "pubchem: %s missing for %s", name, cid)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

func (c *httpClient) AssaySummaries(ctx context.Context, cid string) ([]AssaySummary, error) {
	var body struct {
		AssaySummaries *struct {
			AssaySummary []AssaySummary `json:"AssaySummary"`
		} `json:"AssaySummaries"`
	}
	path := fmt.Sprintf("/compound/cid/%s/assaysummary/JSON", url.PathEscape(cid))
	if err := c.getJSON(ctx, path, nil, &body); err != nil {
		return nil, err
	}
	if body.AssaySummaries == nil {
		return nil, nil
	}
	return body.AssaySummaries.AssaySummary, nil
}

func (c *httpClient) ProteinTargets(ctx context.Context, cid string) ([]ProteinTarget, error) {
	var body struct {
		ProteinTargets []ProteinTarget `json:"ProteinTargets"`
	}
	path := fmt.Sprintf("/compound/cid/%s/protein_targets/JSON", url.PathEscape(cid))
	if err := c.getJSON(ctx, path, nil, &body); err != nil {
		return nil, err
	}
	return body.ProteinTargets, nil
}

func (c *httpClient) Pathways(ctx context.Context, cid string) ([]Pathway, error) {
	var body struct {
		Pathways []Pathway `json:"Pathways"`
	}
	path := fmt.Sprintf("/compound/cid/%s/pathway/JSON", url.PathEscape(cid))
	if err := c.getJSON(ctx, path, nil, &body); err != nil {
		return nil, err
	}
	return body.Pathways, nil
}

func (c *httpClient) CIDsByName(ctx context.Context, name string, broad bool) ([]int64, error) {
	var query url.Values
	if broad {
		query = url.Values{"name_type": []string{"word"}}
	}
	path := fmt.Sprintf("/compound/name/%s/cids/JSON", url.PathEscape(name))
	return c.cids(ctx, path, query)
}

func (c *httpClient) CIDsByFormula(ctx context.Context, formula string) ([]int64, error) {
	path := fmt.Sprintf("/compound/fastformula/%s/cids/JSON", url.PathEscape(formula))
	return c.cids(ctx, path, nil)
}

func (c *httpClient) cids(ctx context.Context, path string, query url.Values) ([]int64, error) {
	var ids identifierList
	if err := c.getJSON(ctx, path, query, &ids); err != nil {
		return nil, err
	}
	if len(ids.IdentifierList.CID) == 0 {
		return nil, eris.Wrapf(ErrNotFound, "pubchem: no cids at %s", path)
	}
	return ids.IdentifierList.CID, nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "pubchem: rate limiter wait")
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return eris.Wrap(err, "pubchem: create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "pubchem: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "pubchem: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 256)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "pubchem: unmarshal response")
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
