package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("queries", DefaultQueries)
	v.SetDefault("subjects", DefaultSubjects)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("format", "csv")
	v.SetDefault("max-distance", 2)
	v.SetDefault("threads", 0)
	v.SetDefault("strategy", "seeded")
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("window", DefaultWindow)
	v.SetDefault("name", DefaultName)
	v.SetDefault("genome", "")
	v.SetDefault("pos", 0)
	return v
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(baseViper(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MaxDistance != 2 || c.Format != "csv" || c.Strategy != "seeded" || !reflect.DeepEqual(c.Subjects, DefaultSubjects) {
		t.Fatalf("unexpected %+v", c)
	}
	if c.Mutation.Window != DefaultWindow || c.Mutation.Name != DefaultName {
		t.Fatalf("mutation defaults not squashed: %+v", c.Mutation)
	}
	if err := c.ValidateScreen(); err != nil {
		t.Fatalf("ValidateScreen: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ASOSCREEN_MAX_DISTANCE", "1")
	t.Setenv("ASOSCREEN_SUBJECTS", "a.fa,b.fa")
	t.Setenv("ASOSCREEN_FORMAT", "TSV")
	c, err := Load(baseViper(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MaxDistance != 1 || c.Format != "tsv" || !reflect.DeepEqual(c.Subjects, []string{"a.fa", "b.fa"}) {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestLoadConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "asoscreen.yaml")
	data := "max-distance: 3\nstrategy: brute\nsubjects:\n  - x.fa\ngenome: hg38.fa\nwindow: 10\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(baseViper(), p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MaxDistance != 3 || c.Strategy != "brute" || c.Subjects[0] != "x.fa" || c.Mutation.Genome != "hg38.fa" || c.Mutation.Window != 10 {
		t.Fatalf("file not applied: %+v", c)
	}
	if err := c.ValidateMutation(); err != nil {
		t.Fatalf("ValidateMutation: %v", err)
	}

	if _, err := Load(baseViper(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing config file accepted")
	}
}

func TestValidate(t *testing.T) {
	ok, err := Load(baseViper(), "")
	if err != nil {
		t.Fatal(err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Format = "xml" },
		func(c *Config) { c.MaxDistance = -1 },
		func(c *Config) { c.Threads = -2 },
		func(c *Config) { c.Strategy = "bwt" },
		func(c *Config) { c.Subjects = []string{" "} },
		func(c *Config) { c.Output = "" },
		func(c *Config) { c.Queries = "" },
	}
	for i, mut := range bad {
		c := ok
		c.Subjects = append([]string(nil), ok.Subjects...)
		mut(&c)
		if err := c.ValidateScreen(); err == nil {
			t.Errorf("case %d: invalid config accepted: %+v", i, c)
		}
	}
	if err := ok.ValidateMutation(); err == nil {
		t.Error("mutation without genome accepted")
	}
}
