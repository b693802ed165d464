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
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	placeholder      = "{num}"
	defaultSeparator = ",\n"
)

// Fill replaces every placeholder in template with num.
func Fill(template string, num int) string {
	return strings.ReplaceAll(template, placeholder, strconv.Itoa(num))
}

// Expand builds the benchmark document for d from n template instances
// numbered 0 to n-1.
func Expand(d Descriptor, n int) ([]byte, error) {
	switch d.Shape {
	case ShapeConcat:
		var buf bytes.Buffer
		for num := 0; num < n; num++ {
			if num > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(Fill(d.Template, num))
		}
		return buf.Bytes(), nil
	case ShapeWrapped:
		return expandWrapped(d, n)
	}
	return nil, fmt.Errorf("%w: %s: unknown shape %s", ErrInvalidTemplate, d.Label(), d.Shape)
}

func expandWrapped(d Descriptor, n int) ([]byte, error) {
	template := strings.TrimSpace(d.Template)
	if len(template) < 2 {
		return nil, fmt.Errorf("%w: %s: template too short", ErrInvalidTemplate, d.Label())
	}

	var left, right byte
	switch {
	case template[0] == '{' && template[len(template)-1] == '}':
		left, right = '{', '}'
	case template[0] == '[' && template[len(template)-1] == ']':
		left, right = '[', ']'
	default:
		return nil, fmt.Errorf("%w: %s: template must be enclosed in {} or []", ErrInvalidTemplate, d.Label())
	}
	body := template[1 : len(template)-1]

	sep := d.Separator
	if sep == "" {
		sep = defaultSeparator
	}

	var buf bytes.Buffer
	buf.WriteByte(left)
	buf.WriteByte('\n')
	for num := 0; num < n; num++ {
		if num > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(Fill(body, num))
	}
	buf.WriteByte('\n')
	buf.WriteByte(right)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
