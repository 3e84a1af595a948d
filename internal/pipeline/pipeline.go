// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/core/scan"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads  int // worker goroutines; <1 means runtime.NumCPU()
	InFlight int // subjects read but not yet emitted; <1 means 4*Threads

	// OnSubject, if set, is called from the collector after the hits of a
	// subject have been visited, in source order.
	OnSubject func(s seq.Subject, hits int)
}

// Stats counts what a run processed.
type Stats struct {
	Subjects int
	Windows  int64
	Hits     int
}

type result struct {
	n    int // position in source order
	subj seq.Subject
	hits []hit.Hit
}

// ForEachHit scans every subject from src against queries and calls visit for
// each hit, ordered by subject (source order), then query, then start. The
// order does not depend on Threads. It returns the first error encountered,
// including a visit error or context cancellation.
func ForEachHit(
	ctx context.Context,
	cfg Config,
	src SubjectSource,
	queries []seq.Query,
	strat scan.Strategy,
	visit func(hit.Hit) error,
) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = runtime.NumCPU()
	}
	if cfg.InFlight < 1 {
		cfg.InFlight = 4 * cfg.Threads
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan result, cfg.Threads)
	results := make(chan result, cfg.Threads*2)
	slots := make(chan struct{}, cfg.InFlight)

	// Feeder: one slot per subject, released by the collector on emit.
	g.Go(func() error {
		defer close(jobs)
		for n := 0; ; n++ {
			select {
			case slots <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			s, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case jobs <- result{n: n, subj: s}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				ws := strat.ScanSubject(j.subj.Seq)
				j.hits = hit.AssembleAll(queries, j.subj, ws)
				select {
				case results <- j:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: reorder buffer keyed by source position.
	var (
		st      Stats
		verr    error
		next    int
		pending = make(map[int]result, cfg.InFlight)
	)
	for r := range results {
		if verr != nil {
			continue
		}
		pending[r.n] = r
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			for _, h := range p.hits {
				if err := visit(h); err != nil {
					verr = err
					cancel()
					break
				}
			}
			if verr != nil {
				break
			}
			st.Subjects++
			st.Hits += len(p.hits)
			for _, q := range queries {
				st.Windows += int64(scan.WindowCount(p.subj.Len(), q.Len()))
			}
			if cfg.OnSubject != nil {
				cfg.OnSubject(p.subj, len(p.hits))
			}
			<-slots
		}
	}

	gerr := g.Wait()
	switch {
	case verr != nil:
		return st, verr
	case gerr != nil:
		return st, gerr
	default:
		return st, ctx.Err()
	}
}

// Collect runs ForEachHit and returns all hits in canonical order.
func Collect(ctx context.Context, cfg Config, src SubjectSource, queries []seq.Query, strat scan.Strategy) ([]hit.Hit, Stats, error) {
	var out []hit.Hit
	st, err := ForEachHit(ctx, cfg, src, queries, strat, func(h hit.Hit) error {
		out = append(out, h)
		return nil
	})
	return out, st, err
}
