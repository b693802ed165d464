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
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

// Report is the summary of a run.
type Report struct {
	Go             string  `json:"go"`
	TemplateNumber int     `json:"template_number"`
	TimeitNumber   int     `json:"timeit_number"`
	Results        Results `json:"results"`
}

// NewReport describes results measured with cfg on the running toolchain.
func NewReport(results Results, cfg Config) Report {
	return Report{
		Go:             GoInfo(),
		TemplateNumber: cfg.TemplateNumber,
		TimeitNumber:   cfg.Number,
		Results:        results,
	}
}

// GoInfo identifies the toolchain and platform, e.g. "Go 1.22.5 (gc, linux)".
func GoInfo() string {
	return fmt.Sprintf("Go %s (%s, %s)", strings.TrimPrefix(runtime.Version(), "go"), runtime.Compiler, runtime.GOOS)
}

// WriteReport writes r as a single JSON record when structured is set, and
// as a table sorted from fastest to slowest otherwise.
func WriteReport(w io.Writer, r Report, structured bool) error {
	if structured {
		return json.NewEncoder(w).Encode(r)
	}

	labels := make([]string, 0, len(r.Results))
	padding := 0
	for label := range r.Results {
		labels = append(labels, label)
		if len(label) > padding {
			padding = len(label)
		}
	}
	sort.Slice(labels, func(i, j int) bool {
		ti, tj := r.Results[labels[i]], r.Results[labels[j]]
		if ti != tj {
			return ti < tj
		}
		return labels[i] < labels[j]
	})

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.Go)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	for _, label := range labels {
		fmt.Fprintf(&b, "%-*s%s\n", padding+2, label, strconv.FormatFloat(r.Results[label], 'g', -1, 64))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
