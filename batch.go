package algokit

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// SortRequest describes one buffer for SortBatch.
type SortRequest struct {
	Data        []byte
	Count       int
	TypeID      string
	AlgorithmID string
	OrderID     string
}

// SearchRequest describes one lookup for SearchBatch.
type SearchRequest struct {
	Data        []byte
	Count       int
	Key         []byte
	TypeID      string
	AlgorithmID string
	OrderID     string
}

// SortBatch sorts independent buffers concurrently and returns one status
// per request, index-aligned. Each buffer must be distinct; the per-call
// semantics are identical to Sort.
//
// If ctx is canceled before all requests start, SortBatch returns a nil
// slice and the context error.
func SortBatch(ctx context.Context, reqs []SortRequest, opts ...Option) ([]int, error) {
	o := newOptions(opts)
	statuses := make([]int, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			status := Sort(req.Data, req.Count, req.TypeID, req.AlgorithmID, req.OrderID)
			statuses[i] = status
			o.metrics.RecordSort(time.Since(start), status)
			o.logger.LogSort(ctx, req.TypeID, req.AlgorithmID, req.Count, status)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}

// SearchBatch runs independent searches concurrently and returns one
// index-or-status result per request, index-aligned.
//
// If ctx is canceled before all requests start, SearchBatch returns a nil
// slice and the context error.
func SearchBatch(ctx context.Context, reqs []SearchRequest, opts ...Option) ([]int, error) {
	o := newOptions(opts)
	results := make([]int, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			result := Search(req.Data, req.Count, req.Key, req.TypeID, req.AlgorithmID, req.OrderID)
			results[i] = result
			o.metrics.RecordSearch(time.Since(start), result)
			o.logger.LogSearch(ctx, req.TypeID, req.AlgorithmID, req.Count, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
