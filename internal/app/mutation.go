// internal/app/mutation.go
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Elococin/aso-offtarget-pipeline/core/mutation"
	"github.com/Elococin/aso-offtarget-pipeline/core/seq"
	"github.com/Elococin/aso-offtarget-pipeline/internal/appcore"
	"github.com/Elococin/aso-offtarget-pipeline/internal/config"
	"github.com/Elococin/aso-offtarget-pipeline/internal/variant"
	"github.com/Elococin/aso-offtarget-pipeline/pkg/api"
)

func newMutationCmd(st *runState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutation",
		Short: "Build allele-specific queries around a variant and screen the mutant one",
		Long: `Build allele-specific queries around a single variant.

The variant (chrom,pos,ref,alt[,gt]) is read from the first row of
--mutation-check; --chrom and --pos override it. A window of --window bases on
each side is cut from --genome, the reference base is checked, and the mutant
and wild-type sequences are written to --output-sequences. The mutant sequence
is then screened against the subject corpus like any other query.`,
		Example: `  asoscreen mutation --genome hg38.fa --mutation-check mutation_check.csv --name SYT1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := c.ValidateMutation(); err != nil {
				return &UsageError{Err: err}
			}
			lg, closeLog, err := newLogger(st, c)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()
			return runMutation(cmd.Context(), st, lg, c)
		},
	}
	f := cmd.Flags()
	f.String("mutation-check", config.DefaultMutationCheck, "variant CSV (chrom,pos,ref,alt[,gt]); the first row is used")
	f.String("genome", "", "reference genome FASTA (required)")
	f.String("chrom", "", "override the variant chromosome (with or without 'chr')")
	f.Int("pos", 0, "override the 1-based variant position")
	f.Int("window", config.DefaultWindow, "bases on each side of the variant")
	f.String("name", config.DefaultName, "target name; queries are <name>_mutant and <name>_wt")
	f.String("output-sequences", config.DefaultSequencesOutput, "CSV of the mutant and wild-type sequences")
	addScanFlags(cmd, config.DefaultMutationOutput)
	return cmd
}

func runMutation(ctx context.Context, st *runState, lg *log.Logger, c config.Config) error {
	m := c.Mutation

	v, err := variant.ReadFirstFile(m.Check)
	if err != nil {
		return &appcore.InputError{Err: err}
	}
	lg.Info("variant", "source", m.Check, "variant", v.String())
	chrom := variant.NormalizeChrom(v.Chrom)
	if m.Chrom != "" {
		chrom = m.Chrom
	}
	pos := v.Pos
	if m.Pos > 0 {
		pos = m.Pos
	}
	if chrom == "" {
		return usagef("no chromosome in %s and --chrom not set", m.Check)
	}

	lg.Info("extracting reference window", "genome", m.Genome, "chrom", chrom, "pos", pos, "radius", m.Window)
	ref, err := variant.ExtractWindow(ctx, m.Genome, chrom, pos, m.Window)
	if err != nil {
		return &appcore.InputError{Err: err}
	}
	pair, err := mutation.Build(mutation.Request{
		Name:      m.Name,
		Ref:       ref,
		Center:    m.Window,
		Radius:    m.Window,
		Alt:       v.Alt,
		RefAllele: v.Ref,
	})
	if err != nil {
		return &appcore.InputError{Err: err}
	}
	lg.Info("allele sequences", "mutant", string(pair.Mutant.Seq), "wt", string(pair.WildType.Seq))

	if err := writeSequences(m.OutputSequences, variant.Rows(m.Name, chrom, pos, pair)); err != nil {
		return err
	}
	lg.Info("sequences written", "path", m.OutputSequences)

	s, err := appcore.Run(ctx, st.stdout, st.stderr, lg, scanOptions(c), []seq.Query{pair.Mutant})
	if err != nil {
		return err
	}
	return finish(st, lg, c, s)
}

func writeSequences(path string, rows []api.MutationSequenceV1) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sequences output: %w", err)
	}
	werr := variant.WriteSequences(f, rows)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}
