// Package config holds run settings decoded from viper: command-line flags,
// ASOSCREEN_* environment variables, an optional config file and defaults,
// in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Elococin/aso-offtarget-pipeline/core/scan"
	"github.com/Elococin/aso-offtarget-pipeline/internal/output"
)

// EnvPrefix prefixes environment overrides, e.g. ASOSCREEN_MAX_DISTANCE=1.
const EnvPrefix = "ASOSCREEN"

// Defaults used by the command flags.
const (
	DefaultQueries         = "data/aso_sequences.txt"
	DefaultOutput          = "results.csv"
	DefaultMutationOutput  = "mutation_offtarget_hits.csv"
	DefaultMutationCheck   = "mutation_check.csv"
	DefaultSequencesOutput = "mutation_sequences.csv"
	DefaultWindow          = 25
	DefaultName            = "variant"
	DefaultLogLevel        = "info"
)

// DefaultSubjects is the ordered candidate list: the full transcriptome if
// present, else the bundled mock corpus.
var DefaultSubjects = []string{"data/grch38_refseq_transcripts.fa", "data/mock_transcripts.fa"}

// MutationConfig is settings for the allele-specific run.
type MutationConfig struct {
	// resolved variant tuple (chrom,pos,ref,alt,gt CSV)
	Check string `mapstructure:"mutation-check"`

	// genome FASTA the window is cut from
	Genome string `mapstructure:"genome"`

	// overrides for the variant file
	Chrom string `mapstructure:"chrom"`
	Pos   int    `mapstructure:"pos"`

	// bases on each side of the variant
	Window int `mapstructure:"window"`

	// target name; query ids are <name>_mutant and <name>_wt
	Name string `mapstructure:"name"`

	OutputSequences string `mapstructure:"output-sequences"`
}

// Config is the root-level settings struct.
type Config struct {
	Queries  string   `mapstructure:"queries"`
	Subjects []string `mapstructure:"subjects"`
	Output   string   `mapstructure:"output"`
	Format   string   `mapstructure:"format"`

	MaxDistance int    `mapstructure:"max-distance"`
	Threads     int    `mapstructure:"threads"`
	Strategy    string `mapstructure:"strategy"`

	LogLevel        string `mapstructure:"log-level"`
	LogFile         string `mapstructure:"log-file"`
	Progress        bool   `mapstructure:"progress"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`
	SummaryJSON     string `mapstructure:"summary-json"`

	Mutation MutationConfig `mapstructure:",squash"`
}

// Load reads the optional config file into v, enables environment overrides
// and decodes the result. Flags must already be bound to v.
func Load(v *viper.Viper, file string) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	return c, nil
}

// Validate checks the settings shared by every scanning command.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path is empty")
	}
	if !contains(output.Formats(), c.Format) {
		return fmt.Errorf("format must be one of %s, got %q", strings.Join(output.Formats(), "|"), c.Format)
	}
	if c.MaxDistance < 0 {
		return fmt.Errorf("max-distance must be ≥ 0, got %d", c.MaxDistance)
	}
	if c.Threads < 0 {
		return fmt.Errorf("threads must be ≥ 0, got %d", c.Threads)
	}
	if c.Strategy != scan.StrategySeeded && c.Strategy != scan.StrategyBrute {
		return fmt.Errorf("strategy must be %s|%s, got %q", scan.StrategySeeded, scan.StrategyBrute, c.Strategy)
	}
	if len(nonEmpty(c.Subjects)) == 0 {
		return fmt.Errorf("no subject sources given")
	}
	return nil
}

// ValidateScreen adds the checks for the screen command.
func (c Config) ValidateScreen() error {
	if strings.TrimSpace(c.Queries) == "" {
		return fmt.Errorf("queries path is empty")
	}
	return c.Validate()
}

// ValidateMutation adds the checks for the mutation command.
func (c Config) ValidateMutation() error {
	m := c.Mutation
	switch {
	case strings.TrimSpace(m.Genome) == "":
		return fmt.Errorf("genome FASTA is required")
	case m.Window < 0:
		return fmt.Errorf("window must be ≥ 0, got %d", m.Window)
	case m.Pos < 0:
		return fmt.Errorf("pos must be ≥ 1, got %d", m.Pos)
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("name is empty")
	}
	return c.Validate()
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
