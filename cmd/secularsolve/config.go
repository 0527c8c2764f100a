package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// coefficientFile is the on-disk shape of a secular equation, adapted from
// inference-sim's coefficient-config YAML (cmd/coefficients_config.go): one
// real+imaginary pair per a_i and b_i, plus the solve parameters.
type coefficientFile struct {
	N            int       `yaml:"n"`
	ARe          []float64 `yaml:"a_re"`
	AIm          []float64 `yaml:"a_im"`
	BRe          []float64 `yaml:"b_re"`
	BIm          []float64 `yaml:"b_im"`
	PrecOut      uint      `yaml:"prec_out"`
	InitialPhase string    `yaml:"initial_phase"`
}

func loadCoefficientFile(path string) (*coefficientFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("secularsolve: reading %s: %w", path, err)
	}
	var cfg coefficientFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("secularsolve: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("secularsolve: %s: %w", path, err)
	}
	return &cfg, nil
}

func (cfg *coefficientFile) validate() error {
	if cfg.N <= 0 {
		return fmt.Errorf("n must be positive, got %d", cfg.N)
	}
	for _, field := range []struct {
		name string
		v    []float64
	}{
		{"a_re", cfg.ARe}, {"a_im", cfg.AIm}, {"b_re", cfg.BRe}, {"b_im", cfg.BIm},
	} {
		if len(field.v) != cfg.N {
			return fmt.Errorf("%s has %d entries, want %d", field.name, len(field.v), cfg.N)
		}
	}
	if cfg.PrecOut == 0 {
		return fmt.Errorf("prec_out must be positive")
	}
	return nil
}

func (cfg *coefficientFile) complexCoefficients() (a, b []complex128) {
	a = make([]complex128, cfg.N)
	b = make([]complex128, cfg.N)
	for i := 0; i < cfg.N; i++ {
		a[i] = complex(cfg.ARe[i], cfg.AIm[i])
		b[i] = complex(cfg.BRe[i], cfg.BIm[i])
	}
	return a, b
}
