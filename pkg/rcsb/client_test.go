package rcsb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/entry/1HSG", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rcsb_id":"1HSG","struct":{"title":"HIV-1 PROTEASE COMPLEXED WITH L-735,524"},"rcsb_entry_info":{"resolution_combined":[2.0],"molecular_weight":21.8}}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	got, err := client.Entry(context.Background(), " 1hsg ")

	require.NoError(t, err)
	assert.Equal(t, "1HSG", got.ID)
	assert.Equal(t, "HIV-1 PROTEASE COMPLEXED WITH L-735,524", got.Title())
	assert.Equal(t, []float64{2.0}, got.Info.ResolutionCombined)
}

func TestEntry_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	_, err := client.Entry(context.Background(), "0000")

	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestEntry_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Entry(context.Background(), "1HSG")

	require.Error(t, err)
	assert.False(t, eris.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "502")
}

func TestEntry_EmptyID(t *testing.T) {
	t.Parallel()

	client := NewClient(WithBaseURL("http://127.0.0.1:0"))
	_, err := client.Entry(context.Background(), "  ")
	require.Error(t, err)
}

func TestTitle_NilEntry(t *testing.T) {
	var e *Entry
	assert.Empty(t, e.Title())
}
