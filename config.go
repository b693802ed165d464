/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package decodebench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTemplate is returned when a template cannot be expanded.
	ErrInvalidTemplate = errors.New("invalid template")
	// ErrInconsistent is returned when two templates decode to different data.
	ErrInconsistent = errors.New("data templates do not all yield the same data")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the parameters of one benchmark run. The mapstructure tags
// are the keys used for flags, environment variables and config files.
type Config struct {
	// Repeat is the number of timed trials per library; the minimum is kept.
	Repeat int `mapstructure:"timeit_repeat"`
	// Number is the number of parse calls in each trial.
	Number int `mapstructure:"timeit_number"`
	// TemplateNumber is the number of template instances in the document.
	TemplateNumber int `mapstructure:"template_number"`
	// Structured selects the single JSON record output.
	Structured bool `mapstructure:"structured_out"`
	// CONLPlugin is the path of a Go plugin replacing the CONL decoder.
	CONLPlugin string `mapstructure:"conl_plugin"`
	// Exclude lists descriptor labels to leave out of the run.
	Exclude []string `mapstructure:"exclude"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Repeat:         10,
		Number:         1,
		TemplateNumber: 1000,
	}
}

func (c Config) Validate() error {
	if c.Repeat < 1 {
		return fmt.Errorf("%w: timeit_repeat must be at least 1, got %d", ErrInvalidConfig, c.Repeat)
	}
	if c.Number < 1 {
		return fmt.Errorf("%w: timeit_number must be at least 1, got %d", ErrInvalidConfig, c.Number)
	}
	if c.TemplateNumber < 1 {
		return fmt.Errorf("%w: template_number must be at least 1, got %d", ErrInvalidConfig, c.TemplateNumber)
	}
	return nil
}
