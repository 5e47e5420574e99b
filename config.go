package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects every setting for a sampling run in one place,
// passed explicitly to the pipeline instead of living in scattered
// globals. Paths are relative to each input directory.
type Config struct {
	// Dirs are the data directories to process; command-line
	// arguments after the config file override them
	Dirs []string `yaml:"dirs"`
	// DatasetFile is the delimited record file holding the universe
	DatasetFile string `yaml:"dataset_file"`
	// RefcodeColumn and SmilesColumn name the identifier and
	// structure columns in DatasetFile
	RefcodeColumn string `yaml:"refcode_column"`
	SmilesColumn  string `yaml:"smiles_column"`
	// OutputFile receives the selection; ExistingFile is read for
	// molecules selected by a previous run and defaults to
	// OutputFile so reruns extend themselves
	OutputFile   string `yaml:"output_file"`
	ExistingFile string `yaml:"existing_file"`
	// Samples is the total selection size, prior molecules included
	Samples int `yaml:"samples"`
	// Radius and Size control the circular fingerprints
	Radius int `yaml:"radius"`
	Size   int `yaml:"size"`
	// Clusters is the cluster count for the diagnostic plot,
	// written to PlotFile; NoPlot skips the plot entirely
	Clusters int    `yaml:"clusters"`
	PlotFile string `yaml:"plot_file"`
	NoPlot   bool   `yaml:"no_plot"`
	// Workers caps the directories processed at once
	Workers int `yaml:"workers"`
	// Seed fixes the bootstrap draw; nil keeps it time-seeded
	Seed  *int64 `yaml:"seed"`
	Debug bool   `yaml:"debug"`
}

// LoadConfig reads the YAML configuration at path, fills in defaults
// for unset values, and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	conf.ApplyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &conf, nil
}

// ApplyDefaults sets default values for any zero values in c
func (c *Config) ApplyDefaults() {
	if c.DatasetFile == "" {
		c.DatasetFile = "energy_rank_4_6.csv"
	}
	if c.RefcodeColumn == "" {
		c.RefcodeColumn = "REFCODE"
	}
	if c.SmilesColumn == "" {
		c.SmilesColumn = "SMILES"
	}
	if c.OutputFile == "" {
		c.OutputFile = "sampled_smiles.txt"
	}
	if c.ExistingFile == "" {
		c.ExistingFile = c.OutputFile
	}
	if c.Samples == 0 {
		c.Samples = 4
	}
	if c.Radius == 0 {
		c.Radius = 3
	}
	if c.Size == 0 {
		c.Size = 1024
	}
	if c.Clusters == 0 {
		c.Clusters = 5
	}
	if c.PlotFile == "" {
		c.PlotFile = "fps_clustering_with_existing.png"
	}
	if c.Workers == 0 {
		c.Workers = 6
	}
}

// Validate reports the first nonsense setting found in c
func (c *Config) Validate() error {
	switch {
	case c.Samples < 1:
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	case c.Radius < 0:
		return fmt.Errorf("radius cannot be negative, got %d", c.Radius)
	case c.Size < 1:
		return fmt.Errorf("size must be positive, got %d", c.Size)
	case c.Clusters < 1:
		return fmt.Errorf("clusters must be positive, got %d", c.Clusters)
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
