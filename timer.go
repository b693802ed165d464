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
	"fmt"
	"log/slog"
	"time"
)

// Results maps a descriptor label to the fastest trial in seconds.
type Results map[string]float64

// Timer measures parse calls. The zero value uses the wall clock.
type Timer struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (t Timer) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

// Time builds d's document once and returns the fastest of cfg.Repeat
// trials, each consisting of cfg.Number parse calls. Only the parse calls
// are timed.
func (t Timer) Time(d Descriptor, cfg Config) (float64, error) {
	data, err := Expand(d, cfg.TemplateNumber)
	if err != nil {
		return 0, err
	}

	var best time.Duration
	for trial := 0; trial < cfg.Repeat; trial++ {
		start := t.now()
		for i := 0; i < cfg.Number; i++ {
			if _, err := d.Parser.Parse(data); err != nil {
				return 0, fmt.Errorf("error parsing %s document: %w", d.Label(), err)
			}
		}
		elapsed := t.now().Sub(start)
		if trial == 0 || elapsed < best {
			best = elapsed
		}
	}
	return best.Seconds(), nil
}

// Run times every descriptor in order.
func (t Timer) Run(descs []Descriptor, cfg Config) (Results, error) {
	results := make(Results, len(descs))
	for _, d := range descs {
		seconds, err := t.Time(d, cfg)
		if err != nil {
			return nil, err
		}
		slog.Debug("Benchmarked library", "library", d.Label(), "seconds", seconds)
		results[d.Label()] = seconds
	}
	return results, nil
}
