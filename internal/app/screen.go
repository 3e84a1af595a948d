// internal/app/screen.go
package app

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Elococin/aso-offtarget-pipeline/core/query"
	"github.com/Elococin/aso-offtarget-pipeline/internal/appcore"
	"github.com/Elococin/aso-offtarget-pipeline/internal/config"
	"github.com/Elococin/aso-offtarget-pipeline/internal/output"
	"github.com/Elococin/aso-offtarget-pipeline/internal/summary"
	"github.com/Elococin/aso-offtarget-pipeline/pkg/api"
)

func newScreenCmd(st *runState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Scan every query against the subject corpus",
		Example: `  asoscreen screen -q data/aso_sequences.txt -o results.csv
  asoscreen screen -q asos.txt -s refseq.fa.gz -s mock.fa -d 1 -f jsonl -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := c.ValidateScreen(); err != nil {
				return &UsageError{Err: err}
			}
			lg, closeLog, err := newLogger(st, c)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()
			return runScreen(cmd.Context(), st, lg, c)
		},
	}
	cmd.Flags().StringP("queries", "q", config.DefaultQueries, "query list: one 'id sequence' per line")
	addScanFlags(cmd, config.DefaultOutput)
	return cmd
}

func runScreen(ctx context.Context, st *runState, lg *log.Logger, c config.Config) error {
	qs, err := query.LoadFile(c.Queries)
	if err != nil {
		return &appcore.InputError{Err: err}
	}
	lg.Info("queries loaded", "path", c.Queries, "count", len(qs), "longest", query.MaxLen(qs))

	s, err := appcore.Run(ctx, st.stdout, st.stderr, lg, scanOptions(c), qs)
	if err != nil {
		return err
	}
	return finish(st, lg, c, s)
}

func scanOptions(c config.Config) appcore.Options {
	return appcore.Options{
		Subjects:    c.Subjects,
		MaxDistance: c.MaxDistance,
		Strategy:    c.Strategy,
		Threads:     c.Threads,
		Output:      c.Output,
		Format:      c.Format,
		Progress:    c.Progress,
	}
}

// finish reports the summary and sets the exit code for a completed run.
func finish(st *runState, lg *log.Logger, c config.Config, s api.SummaryV1) error {
	if lg.GetLevel() <= log.InfoLevel {
		if err := summary.Render(st.stderr, s); err != nil {
			return err
		}
	}
	if c.SummaryJSON != "" {
		f, err := os.Create(c.SummaryJSON)
		if err != nil {
			return err
		}
		werr := output.WriteSummaryJSON(f, s)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			return werr
		}
	}
	if c.Output != "-" {
		lg.Info("results written", "path", c.Output, "format", c.Format)
	}
	if s.Hits == 0 {
		st.code = c.NoMatchExitCode
	}
	return nil
}
