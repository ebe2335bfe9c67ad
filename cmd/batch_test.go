package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compound-cli/internal/model"
)

// decodedLine mirrors batchLine with a generic result, since scores only
// marshal one way.
type decodedLine struct {
	RunID  string         `json:"run_id"`
	CID    string         `json:"cid"`
	Result map[string]any `json:"result"`
	Error  string         `json:"error"`
}

func parseLines(t *testing.T, out *bytes.Buffer) map[string]decodedLine {
	t.Helper()
	lines := make(map[string]decodedLine)
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		var l decodedLine
		require.NoError(t, json.Unmarshal(sc.Bytes(), &l))
		lines[l.CID] = l
	}
	require.NoError(t, sc.Err())
	return lines
}

func TestProcessBatch_FailuresDoNotAbort(t *testing.T) {
	var out bytes.Buffer
	var calls atomic.Int64

	err := processBatch(context.Background(), []string{"2244", "0", "3672"}, 0, 2, &out,
		func(_ context.Context, cid string) (*model.Prediction, error) {
			calls.Add(1)
			if cid == "0" {
				return nil, eris.New("pubchem: not found")
			}
			return &model.Prediction{Description: "cid " + cid}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, int64(3), calls.Load())

	lines := parseLines(t, &out)
	require.Len(t, lines, 3)

	assert.Equal(t, "cid 2244", lines["2244"].Result["description"])
	assert.Empty(t, lines["2244"].Error)
	assert.Nil(t, lines["0"].Result)
	assert.Contains(t, lines["0"].Error, "not found")

	runID := lines["2244"].RunID
	assert.NotEmpty(t, runID)
	for _, l := range lines {
		assert.Equal(t, runID, l.RunID)
	}
}

func TestProcessBatch_Limit(t *testing.T) {
	var out bytes.Buffer
	var calls atomic.Int64

	err := processBatch(context.Background(), []string{"1", "2", "3", "4"}, 2, 0, &out,
		func(_ context.Context, cid string) (*model.Prediction, error) {
			calls.Add(1)
			return &model.Prediction{}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
	assert.Len(t, parseLines(t, &out), 2)
}

func TestReadIDs_Stdin(t *testing.T) {
	in := strings.NewReader("2244\n\n# comment\n  3672  \n")
	ids, err := readIDs(in, "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"2244", "3672"}, ids)
}

func TestReadIDs_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cids.txt")
	require.NoError(t, os.WriteFile(path, []byte("702\n2244\n"), 0o644))

	ids, err := readIDs(nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"702", "2244"}, ids)
}

func TestReadIDs_MissingFile(t *testing.T) {
	_, err := readIDs(nil, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
