package poker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchEvaluator ranks many independent hands per call. Results are written
// into out when it is large enough, otherwise a new slice is allocated; the
// returned slice has len(hands) entries in input order.
type BatchEvaluator interface {
	EvaluateBatch(hands []Hand, out []HandRank) []HandRank
}

// PortableBatch evaluates each hand with the scalar evaluator. It is available
// on every platform and is the reference for the platform batch path.
type PortableBatch struct {
	t *RankTables
}

// NewPortableBatch returns the scalar batch evaluator over t.
func NewPortableBatch(t *RankTables) *PortableBatch {
	return &PortableBatch{t: t}
}

// EvaluateBatch implements BatchEvaluator.
func (p *PortableBatch) EvaluateBatch(hands []Hand, out []HandRank) []HandRank {
	out = sizeOut(out, len(hands))
	for i := range hands {
		out[i] = p.t.Evaluate(hands[i])
	}
	return out
}

// NewBatchEvaluator returns the batch path compiled for this platform.
func NewBatchEvaluator(t *RankTables) BatchEvaluator {
	return newPlatformBatch(t)
}

// EvaluateBatch ranks hands with the default tables and the platform batch path.
func EvaluateBatch(hands []Hand, out []HandRank) []HandRank {
	return NewBatchEvaluator(DefaultTables()).EvaluateBatch(hands, out)
}

// minParallelChunk keeps goroutine overhead small relative to the work.
const minParallelChunk = 4096

// EvaluateBatchParallel splits hands into disjoint chunks evaluated
// concurrently by be. workers <= 0 uses GOMAXPROCS. Cancellation is observed
// between chunks; on cancellation the context error is returned.
func EvaluateBatchParallel(ctx context.Context, be BatchEvaluator, hands []Hand, out []HandRank, workers int) ([]HandRank, error) {
	out = sizeOut(out, len(hands))
	if len(hands) == 0 {
		return out, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := max(minParallelChunk, (len(hands)+workers-1)/workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < len(hands); start += chunk {
		end := min(start+chunk, len(hands))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			be.EvaluateBatch(hands[start:end], out[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func sizeOut(out []HandRank, n int) []HandRank {
	if len(out) < n {
		return make([]HandRank, n)
	}
	return out[:n]
}
