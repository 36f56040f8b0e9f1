package main

import (
	"fmt"
	"os"

	"github.com/notargets/CGKernel/solvers"
	"gopkg.in/yaml.v3"
)

// StudyConfig is one convergence study in a YAML study file.
type StudyConfig struct {
	Problem string `yaml:"problem"`
	Degree  int    `yaml:"degree"`
	Levels  []int  `yaml:"levels"`
}

// Config is the top-level YAML study file layout:
//
//	studies:
//	  - problem: poisson
//	    degree: 2
//	    levels: [4, 8, 16]
type Config struct {
	Studies []StudyConfig `yaml:"studies"`
}

// LoadConfig reads and validates a YAML study file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(cfg.Studies) == 0 {
		return nil, fmt.Errorf("config %s defines no studies", path)
	}
	for i, s := range cfg.Studies {
		if err := validateStudy(s); err != nil {
			return nil, fmt.Errorf("config %s, study %d: %w", path, i, err)
		}
	}
	return cfg, nil
}

func validateStudy(s StudyConfig) error {
	if _, err := solvers.Problem(s.Problem).Solver(); err != nil {
		return err
	}
	if s.Degree < 1 {
		return fmt.Errorf("degree must be positive, got %d", s.Degree)
	}
	if len(s.Levels) < 2 {
		return fmt.Errorf("need at least 2 levels, got %d", len(s.Levels))
	}
	for _, n := range s.Levels {
		if n < 1 {
			return fmt.Errorf("invalid resolution %d", n)
		}
	}
	return nil
}
