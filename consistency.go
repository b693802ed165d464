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
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// consistencyNum is the placeholder value used by CheckConsistency.
const consistencyNum = 1

// Decode fills d's template with num, parses it with d's parser and
// normalizes the result.
func Decode(d Descriptor, num int) (interface{}, error) {
	obj, err := d.Parser.Parse([]byte(Fill(d.Template, num)))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s template: %w", d.Label(), err)
	}
	normalized, err := Normalize(obj)
	if err != nil {
		return nil, fmt.Errorf("error normalizing %s data: %w", d.Label(), err)
	}
	return normalized, nil
}

// CheckConsistency verifies that every descriptor's template decodes to the
// same data. Benchmark results are only comparable if it returns nil.
func CheckConsistency(descs []Descriptor) error {
	if len(descs) < 2 {
		return nil
	}

	want, err := Decode(descs[0], consistencyNum)
	if err != nil {
		return err
	}
	for _, d := range descs[1:] {
		got, err := Decode(d, consistencyNum)
		if err != nil {
			return err
		}
		if !reflect.DeepEqual(want, got) {
			return fmt.Errorf("%w: %s and %s differ (-%s +%s):\n%s",
				ErrInconsistent, descs[0].Label(), d.Label(), descs[0].Label(), d.Label(), cmp.Diff(want, got))
		}
	}
	return nil
}
