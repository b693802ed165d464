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

// Package decodebench compares the decoding speed of JSON, CONL, MAML, YAML
// and TOML libraries.
//
// Every library is described by a Descriptor holding a template for one unit
// of test data. The templates of all libraries describe the same data, which
// CheckConsistency verifies before anything is timed. Expand replicates a
// template into a large document and Timer reports the fastest of several
// timed trials of parsing it.
//
// Benchmark results should be interpreted with the understanding that they
// may be highly dependent on the form of the benchmark data. In formats where
// data may have multiple representations, the exact representation used may
// also play a significant role.
package decodebench
