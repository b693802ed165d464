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

import "fmt"

// Parser decodes a document into a generic Go value.
type Parser interface {
	// Parse decodes data. The returned value is whatever the underlying
	// library produces for an untyped target; see Normalize.
	Parse(data []byte) (interface{}, error)

	// Available reports whether the parser can be used in the current
	// process. A non-nil error removes the descriptor from the run.
	Available() error
}

// ParserFunc adapts a plain decode function to a Parser that is always
// available.
type ParserFunc func(data []byte) (interface{}, error)

func (f ParserFunc) Parse(data []byte) (interface{}, error) { return f(data) }

func (f ParserFunc) Available() error { return nil }

// Shape describes how a template is replicated into a benchmark document.
type Shape int

const (
	// ShapeConcat joins complete template instances. Used by formats that
	// allow several root-level key groups in one document.
	ShapeConcat Shape = iota

	// ShapeWrapped strips the template's outermost {} or [] pair, joins the
	// inner bodies and wraps the result in a single pair again, producing
	// one top-level document.
	ShapeWrapped
)

func (s Shape) String() string {
	switch s {
	case ShapeConcat:
		return "concat"
	case ShapeWrapped:
		return "wrapped"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Descriptor is the static description of one benchmarked library.
type Descriptor struct {
	// Name identifies the library, usually by import path.
	Name string
	// Variant distinguishes several configurations of the same library.
	Variant string
	// Language is the human readable format name.
	Language string
	Parser   Parser
	// Template is one unit of test data. Every "{num}" is replaced with the
	// entry number.
	Template string
	Shape    Shape
	// Separator joins the inner bodies of a ShapeWrapped template.
	// Defaults to ",\n".
	Separator string
}

// Label is the key used for the descriptor in Results.
func (d Descriptor) Label() string {
	if d.Variant == "" {
		return d.Name
	}
	return fmt.Sprintf("%s (%s)", d.Name, d.Variant)
}
