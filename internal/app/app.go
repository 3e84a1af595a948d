// Package app is the asoscreen command tree and its exit-code policy.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Elococin/aso-offtarget-pipeline/core/fasta"
	"github.com/Elococin/aso-offtarget-pipeline/core/mutation"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
	"github.com/Elococin/aso-offtarget-pipeline/core/subject"
	"github.com/Elococin/aso-offtarget-pipeline/internal/appcore"
	"github.com/Elococin/aso-offtarget-pipeline/internal/config"
	"github.com/Elococin/aso-offtarget-pipeline/internal/logging"
	"github.com/Elococin/aso-offtarget-pipeline/internal/version"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitRuntime     = 3
	ExitInterrupted = 130
)

// UsageError is a bad flag, argument or setting.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// runState carries per-invocation state between cobra and RunContext.
type runState struct {
	stdout, stderr io.Writer
	code           int // set by commands that finish without error
}

func newRootCmd(st *runState) *cobra.Command {
	root := &cobra.Command{
		Use:   "asoscreen",
		Short: "Screen antisense oligonucleotides for near-matching off-target sites",
		Long: `Screen antisense oligonucleotides (ASOs) for off-target sites.

Every window of every subject sequence (transcript) is compared with every
query of the same length; windows within --max-distance substitutions are
reported. Ambiguous subject bases (N, IUPAC codes) never match.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(st.stdout)
	root.SetErr(st.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml|toml|json); flags and ASOSCREEN_* env override it")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug|info|warn|error")
	pf.String("log-file", "", "also append logs to this file")

	root.AddCommand(newScreenCmd(st), newMutationCmd(st), newVersionCmd(st))
	return root
}

func newVersionCmd(st *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "asoscreen version %s\n", version.Version)
			return err
		},
	}
}

// addScanFlags registers the settings shared by every scanning command.
func addScanFlags(cmd *cobra.Command, defaultOutput string) {
	f := cmd.Flags()
	f.StringSliceP("subjects", "s", config.DefaultSubjects, "ordered candidate subject FASTA files; the first that exists is used")
	f.StringP("output", "o", defaultOutput, `result file ("-" for stdout)`)
	f.StringP("format", "f", "csv", "result format: csv|tsv|jsonl")
	f.IntP("max-distance", "d", 2, "maximum substitutions per window")
	f.IntP("threads", "t", 0, "worker threads (0 = all CPUs)")
	f.String("strategy", "seeded", "scan strategy: seeded|brute")
	f.Bool("progress", false, "show a progress bar on stderr")
	f.Int("no-match-exit-code", 0, "exit code when no hits are found")
	f.String("summary-json", "", "write the run summary as JSON to this file")
}

// loadConfig binds the command's flags to a fresh viper and decodes them.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	file, _ := cmd.Flags().GetString("config")
	c, err := config.Load(v, file)
	if err != nil {
		return c, &UsageError{Err: err}
	}
	return c, nil
}

func newLogger(st *runState, c config.Config) (*log.Logger, func() error, error) {
	lg, closeFn, err := logging.New(st.stderr, c.LogLevel, c.LogFile)
	if err != nil {
		return nil, nil, &UsageError{Err: err}
	}
	return lg, closeFn, nil
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	var (
		ue *UsageError
		ie *appcore.InputError
		fe *seq.FormatError
		ae *seq.AlphabetError
		re *mutation.RangeError
		rm *mutation.ReferenceMismatchError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &ue), errors.As(err, &ie),
		errors.As(err, &fe), errors.As(err, &ae),
		errors.As(err, &re), errors.As(err, &rm),
		errors.Is(err, subject.ErrNoSource), errors.Is(err, fasta.ErrRecordNotFound):
		return ExitUsage
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "unknown flag"),
		strings.HasPrefix(err.Error(), "accepts "), // cobra arg-count errors
		strings.HasPrefix(err.Error(), "required flag"):
		return ExitUsage
	default:
		return ExitRuntime
	}
}

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	st := &runState{stdout: stdout, stderr: stderr}
	root := newRootCmd(st)
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	if err == nil && parent.Err() != nil {
		err = parent.Err()
	}
	if err != nil {
		code := ExitCode(err)
		if code != ExitInterrupted {
			_, _ = fmt.Fprintln(stderr, "error:", err)
		}
		if code == ExitUsage {
			var ue *UsageError
			if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown") {
				_, _ = fmt.Fprintln(stderr, "Run 'asoscreen --help' for usage.")
			}
		}
		return code
	}
	return st.code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
