package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

const DefaultReplicas = 100

type table struct {
	Breakpoints []float64
	Labels      []string
}

type ring struct {
	Nodes    []string
	Replicas int
}

type BisectConfig struct {
	Table table
	Ring  ring
}

var ErrInvalidConfig = errors.New("invalid config")

// Default is the grading scale used when no config file is given.
func Default() *BisectConfig {
	return &BisectConfig{
		Table: table{
			Breakpoints: []float64{60, 70, 80, 90},
			Labels:      []string{"F", "D", "C", "B", "A"},
		},
		Ring: ring{Replicas: DefaultReplicas},
	}
}

func NewConfig(confPath string) (*BisectConfig, error) {
	var config BisectConfig
	if _, err := toml.DecodeFile(confPath, &config); err != nil {
		return nil, err
	}
	return finish(&config)
}

func Parse(data string) (*BisectConfig, error) {
	var config BisectConfig
	if _, err := toml.Decode(data, &config); err != nil {
		return nil, err
	}
	return finish(&config)
}

func finish(c *BisectConfig) (*BisectConfig, error) {
	if c.Ring.Replicas == 0 {
		c.Ring.Replicas = DefaultReplicas
	}
	if c.Ring.Replicas < 0 {
		return nil, fmt.Errorf("%w: ring.replicas must be positive, got %d", ErrInvalidConfig, c.Ring.Replicas)
	}
	if len(c.Table.Breakpoints) == 0 && len(c.Table.Labels) == 0 {
		c.Table = Default().Table
	}
	if n := len(c.Table.Breakpoints); n > 0 && len(c.Table.Labels) != n+1 {
		return nil, fmt.Errorf("%w: table has %d breakpoints and %d labels", ErrInvalidConfig, n, len(c.Table.Labels))
	}
	return c, nil
}
