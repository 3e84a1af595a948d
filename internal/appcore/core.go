// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/Elococin/aso-offtarget-pipeline/core/hit"
	"github.com/Elococin/aso-offtarget-pipeline/core/scan"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
	"github.com/Elococin/aso-offtarget-pipeline/core/subject"
	"github.com/Elococin/aso-offtarget-pipeline/internal/pipeline"
	"github.com/Elococin/aso-offtarget-pipeline/internal/progress"
	"github.com/Elococin/aso-offtarget-pipeline/internal/summary"
	"github.com/Elococin/aso-offtarget-pipeline/pkg/api"
)

type Options struct {
	Subjects []string // ordered candidate sources

	MaxDistance int
	Strategy    string
	Threads     int

	Output string
	Format string

	Progress bool
}

// InputError marks a failure caused by the inputs (missing or malformed
// files) rather than by the run itself.
type InputError struct{ Err error }

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

func inputErr(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	return &InputError{Err: err}
}

// Run validates the subject corpus, scans it against queries and streams the
// hits to the configured output. The summary is returned even on error, with
// whatever was counted so far.
func Run(
	ctx context.Context,
	stdout, stderr io.Writer,
	logger *log.Logger,
	o Options,
	queries []seq.Query,
) (api.SummaryV1, error) {
	began := time.Now()
	sum := api.SummaryV1{Queries: len(queries), MaxDistance: o.MaxDistance, Strategy: o.Strategy}

	src, skipped, err := subject.Resolve(o.Subjects)
	for _, s := range skipped {
		logger.Warn("subject source unavailable, trying next", "path", s.Path, "err", s.Err)
	}
	if err != nil {
		return sum, inputErr(err)
	}
	sum.SubjectSource = src

	logger.Info("validating subjects", "path", src)
	st, err := subject.Validate(ctx, src)
	if err != nil {
		return sum, inputErr(err)
	}
	logger.Info("subjects ready",
		"subjects", humanize.Comma(int64(st.Subjects)),
		"bases", humanize.Comma(st.Bases),
		"longest", humanize.Comma(int64(st.MaxLen)))
	for d, n := range st.Dialects {
		logger.Debug("header dialect", "dialect", d, "subjects", n)
	}

	strat, err := scan.New(scan.Config{MaxDistance: o.MaxDistance, Strategy: o.Strategy}, queries)
	if err != nil {
		return sum, inputErr(err)
	}
	if sd, ok := strat.(*scan.Seeded); ok {
		logger.Debug("seed index built", "seeds", humanize.Comma(int64(sd.Seeds())))
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	it, err := subject.OpenFile(src)
	if err != nil {
		return sum, inputErr(err)
	}
	defer func() { _ = it.Close() }()

	sink, err := HitWriterFactory{Path: o.Output, Format: o.Format}.Open(stdout, thr*4)
	if err != nil {
		return sum, err
	}

	bar := progress.Start(stderr, st.Subjects, o.Progress)
	tally := summary.New()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info("scanning",
		"queries", humanize.Comma(int64(len(queries))),
		"max_distance", o.MaxDistance,
		"strategy", o.Strategy,
		"threads", thr)
	ps, perr := pipeline.ForEachHit(ctx,
		pipeline.Config{
			Threads:   thr,
			OnSubject: func(seq.Subject, int) { bar.Increment() },
		},
		it, queries, strat,
		func(h hit.Hit) error {
			tally.Add(h)
			select {
			case sink.In <- h:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	bar.Finish()

	werr := sink.Close()

	s := tally.Build()
	s.Subjects, s.Queries, s.Windows = ps.Subjects, len(queries), ps.Windows
	s.MaxDistance, s.Strategy, s.SubjectSource = o.MaxDistance, o.Strategy, src
	s.ElapsedSeconds = time.Since(began).Seconds()

	if perr != nil {
		var fe *seq.FormatError
		var ae *seq.AlphabetError
		if errors.As(perr, &fe) || errors.As(perr, &ae) {
			return s, inputErr(perr)
		}
		return s, perr
	}
	if werr != nil {
		return s, fmt.Errorf("write results: %w", werr)
	}
	logger.Info("scan complete",
		"hits", humanize.Comma(int64(s.Hits)),
		"windows", humanize.Comma(s.Windows),
		"elapsed", time.Since(began).Round(time.Millisecond))
	return s, nil
}
