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

import "log/slog"

// Registry returns the descriptors of every benchmarked library, grouped by
// language. conlPlugin, when not empty, is the path of a Go plugin whose
// Unmarshal function replaces the linked CONL decoder.
func Registry(conlPlugin string) []Descriptor {
	var descs []Descriptor
	descs = append(descs, jsonDescriptors()...)
	descs = append(descs, conlDescriptor(conlPlugin), mamlDescriptor())
	descs = append(descs, yamlDescriptors()...)
	descs = append(descs, tomlDescriptors()...)
	return descs
}

// Available returns the descriptors whose parser reports itself usable and
// whose label is not listed in exclude. Unusable descriptors are skipped
// silently. Exclude labels that name no descriptor are logged as warnings.
func Available(descs []Descriptor, exclude []string) []Descriptor {
	skip := make(map[string]bool, len(exclude))
	for _, label := range exclude {
		skip[label] = false
	}

	available := make([]Descriptor, 0, len(descs))
	for _, d := range descs {
		if _, ok := skip[d.Label()]; ok {
			skip[d.Label()] = true
			slog.Debug("Skipping excluded library", "library", d.Label())
			continue
		}
		if err := d.Parser.Available(); err != nil {
			slog.Debug("Skipping unavailable library", "library", d.Label(), "error", err)
			continue
		}
		available = append(available, d)
	}

	for _, label := range exclude {
		if !skip[label] {
			slog.Warn("Excluded library not found", "library", label)
			// Report each unknown label once.
			skip[label] = true
		}
	}
	return available
}
