// Package config handles the job file describing which meshes to generate.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/philipparndt/sphereply/pkg/sphere"
	"gopkg.in/yaml.v3"
)

// Job kinds
const (
	KindFull = "full"
	KindHalf = "half"
)

// ErrInvalidJob is returned when a job cannot be run
var ErrInvalidJob = errors.New("invalid job")

// Config holds all settings of a job file.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
	Jobs    []Job         `yaml:"jobs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// WatchConfig holds settings for regenerating on job file changes.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Job describes one mesh file to generate.
type Job struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`                 // full or half
	Hemisphere string `yaml:"hemisphere,omitempty"` // left or right, half jobs only
	Longitude  int    `yaml:"longitude"`
	Latitude   int    `yaml:"latitude"`
	Output     string `yaml:"output"`
}

// Default returns the jobs that produce sphereL.ply, sphereR.ply and sphere.ply.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Jobs: []Job{
			{Name: "left", Kind: KindHalf, Hemisphere: "left", Longitude: 64, Latitude: 64, Output: "sphereL.ply"},
			{Name: "right", Kind: KindHalf, Hemisphere: "right", Longitude: 64, Latitude: 64, Output: "sphereR.ply"},
			{Name: "full", Kind: KindFull, Longitude: 64, Latitude: 32, Output: "sphere.ply"},
		},
	}
}

// jobFields mirrors Job with pointer grid counts so a missing count can be
// told apart from an explicit zero
type jobFields struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Hemisphere string `yaml:"hemisphere"`
	Longitude  *int   `yaml:"longitude"`
	Latitude   *int   `yaml:"latitude"`
	Output     string `yaml:"output"`
}

// UnmarshalYAML decodes a job and fills fields the file left out.
// Half spheres default to 64x64 and full spheres to 64x32. Counts given
// explicitly, including zero, are kept for Validate to judge.
func (j *Job) UnmarshalYAML(node *yaml.Node) error {
	var raw jobFields
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*j = Job{
		Name:       raw.Name,
		Kind:       raw.Kind,
		Hemisphere: raw.Hemisphere,
		Output:     raw.Output,
	}
	if j.Kind == "" {
		j.Kind = KindFull
	}
	if j.Name == "" {
		j.Name = j.Output
	}

	j.Longitude = 64
	if raw.Longitude != nil {
		j.Longitude = *raw.Longitude
	}
	j.Latitude = 32
	if j.Kind == KindHalf {
		j.Latitude = 64
	}
	if raw.Latitude != nil {
		j.Latitude = *raw.Latitude
	}
	return nil
}

// Grid returns the subdivision grid of the job
func (j Job) Grid() sphere.Grid {
	return sphere.NewGrid(j.Longitude, j.Latitude)
}

// Validate checks the job kind, grid, hemisphere and output path.
func (j Job) Validate() error {
	if j.Output == "" {
		return fmt.Errorf("%w %q: output is required", ErrInvalidJob, j.Name)
	}
	if err := j.Grid().Validate(); err != nil {
		return fmt.Errorf("job %q: %w", j.Name, err)
	}

	switch j.Kind {
	case KindFull:
		if j.Hemisphere != "" {
			return fmt.Errorf("%w %q: hemisphere is only valid for half jobs", ErrInvalidJob, j.Name)
		}
	case KindHalf:
		if _, err := sphere.ParseHemisphere(j.Hemisphere); err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
	default:
		return fmt.Errorf("%w %q: unknown kind %q", ErrInvalidJob, j.Name, j.Kind)
	}
	return nil
}

// Validate checks every job and rejects duplicate outputs.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs configured", ErrInvalidJob)
	}

	outputs := make(map[string]string, len(c.Jobs))
	for _, job := range c.Jobs {
		if err := job.Validate(); err != nil {
			return err
		}
		if other, exists := outputs[job.Output]; exists {
			return fmt.Errorf("%w: jobs %q and %q both write %s", ErrInvalidJob, other, job.Name, job.Output)
		}
		outputs[job.Output] = job.Name
	}
	return nil
}
