// Package worker fans a vanity search out across CPU cores. Each worker
// owns one Searcher seeded with a disjoint counter offset, so the fleet
// partitions the counter space without any cross-worker coordination.
package worker

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/solvanity/pkg/vanity"
)

// OffsetStride separates the counter ranges of adjacent workers. The
// core gives no overlap guarantee; a stride this wide keeps ranges
// disjoint for any run length a machine can actually sustain.
const OffsetStride = 1 << 40

// DefaultBatchSize is the number of candidates a worker tests between
// cancellation checks and progress visibility.
const DefaultBatchSize = 10_000

// Config holds the pool configuration.
type Config struct {
	Search    vanity.Config // shared search parameters; CountOffset is the fleet base
	Workers   int           // worker count; 0 means runtime.NumCPU()
	BatchSize uint32        // candidates per batch; 0 means DefaultBatchSize
	Logger    *slog.Logger  // nil disables logging
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // candidates tested across all workers
	HashRate    float64 // candidates per second
	ElapsedSecs float64 // time since the pool was created
}

// Pool drives a set of searchers until one of them finds a match.
type Pool struct {
	searchers []*vanity.Searcher
	batchSize uint32
	logger    *slog.Logger
	startTime time.Time
}

// New validates the configuration and builds one searcher per worker,
// each offset by a multiple of OffsetStride from the fleet base offset.
func New(cfg Config) (*Pool, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Pool{
		batchSize: batchSize,
		logger:    logger,
		startTime: time.Now(),
	}
	for i := 0; i < workers; i++ {
		searchCfg := cfg.Search
		searchCfg.CountOffset = cfg.Search.CountOffset + uint64(i)*OffsetStride

		s, err := vanity.New(searchCfg)
		if err != nil {
			return nil, err
		}
		p.searchers = append(p.searchers, s)
	}
	return p, nil
}

// Run blocks until a worker finds a match or ctx is cancelled. On
// cancellation it stops every searcher and returns ctx's error with a
// nil result.
func (p *Pool) Run(ctx context.Context) (*vanity.Result, error) {
	var found atomic.Pointer[vanity.Result]

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range p.searchers {
		i, s := i, s
		g.Go(func() error {
			p.logger.Debug("worker started",
				"worker", i,
				"offset", uint64(i)*OffsetStride)
			for {
				select {
				case <-gctx.Done():
					s.Stop()
					return gctx.Err()
				default:
				}

				if result := s.SearchBatch(p.batchSize); result != nil {
					if found.CompareAndSwap(nil, result) {
						p.logger.Info("match found",
							"worker", i,
							"address", result.Address,
							"attempts", result.Attempts)
					}
					p.Stop()
					return nil
				}
				if s.Stopped() {
					return nil
				}
			}
		})
	}

	err := g.Wait()
	if result := found.Load(); result != nil {
		return result, nil
	}
	return nil, err
}

// Stop latches every searcher; idempotent and safe from any goroutine.
func (p *Pool) Stop() {
	for _, s := range p.searchers {
		s.Stop()
	}
}

// Stats aggregates attempt counts across all workers.
func (p *Pool) Stats() Stats {
	var attempts uint64
	for _, s := range p.searchers {
		attempts += s.Attempts()
	}

	elapsed := time.Since(p.startTime).Seconds()
	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}
