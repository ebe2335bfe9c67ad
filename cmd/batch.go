package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/compound-cli/internal/model"
)

var (
	batchFile  string
	batchLimit int
)

var batchCmd = &cobra.Command{
	Use:   "batch [CID...]",
	Short: "Score many compounds concurrently, one JSON line per CID",
	Example: `  compound-cli batch 2244 3672 5090
  compound-cli batch --file cids.txt
  cat cids.txt | compound-cli batch --file -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		ids := append([]string(nil), args...)
		if batchFile != "" {
			fromFile, err := readIDs(cmd.InOrStdin(), batchFile)
			if err != nil {
				return err
			}
			ids = append(ids, fromFile...)
		}
		if len(ids) == 0 {
			return eris.New("batch: no CIDs given (pass arguments or --file)")
		}

		env, err := initService("batch")
		if err != nil {
			return err
		}

		return processBatch(ctx, ids, batchLimit, cfg.Batch.MaxConcurrent, cmd.OutOrStdout(),
			func(ctx context.Context, cid string) (*model.Prediction, error) {
				smiles, err := env.PubChem.Property(ctx, cid, "CanonicalSMILES")
				if err != nil {
					return nil, eris.Wrapf(err, "batch: canonical smiles for %s", cid)
				}
				return env.Service.Predict(ctx, model.KnownInput{Structure: smiles, ID: cid})
			})
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", `file with one CID per line ("-" reads stdin)`)
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of CIDs to process (0 = all)")
	rootCmd.AddCommand(batchCmd)
}

// predictFunc runs a prediction for one CID.
type predictFunc func(ctx context.Context, cid string) (*model.Prediction, error)

// batchLine is one line of batch output.
type batchLine struct {
	RunID  string            `json:"run_id"`
	CID    string            `json:"cid"`
	Result *model.Prediction `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// processBatch applies limit, then predicts ids concurrently and writes one
// JSON line per id to w. Individual failures never abort the batch.
func processBatch(ctx context.Context, ids []string, limit, concurrency int, w io.Writer, fn predictFunc) error {
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	if concurrency < 1 {
		concurrency = 1
	}

	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("processing batch",
		zap.Int("cids", len(ids)),
		zap.Int("concurrency", concurrency),
	)

	var (
		mu  sync.Mutex
		enc = json.NewEncoder(w)
	)
	emit := func(line batchLine) error {
		mu.Lock()
		defer mu.Unlock()
		return eris.Wrap(enc.Encode(line), "batch: write result")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, cid := range ids {
		cid := cid
		g.Go(func() error {
			line := batchLine{RunID: runID, CID: cid}

			result, err := fn(gctx, cid)
			if err != nil {
				failed.Add(1)
				log.Warn("prediction failed", zap.String("cid", cid), zap.Error(err))
				line.Error = err.Error()
				return emit(line)
			}

			succeeded.Add(1)
			line.Result = result
			return emit(line)
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	log.Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}

// readIDs reads one CID per line from path, or from stdin when path is "-".
// Blank lines and lines starting with "#" are skipped.
func readIDs(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "batch: open %s", path)
		}
		defer f.Close() //nolint:errcheck
		r = f
	}

	var ids []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := sc.Err(); err != nil {
		return nil, eris.Wrap(err, "batch: read ids")
	}
	return ids, nil
}
