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

	goccyyaml "github.com/goccy/go-yaml"
	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"
	kubejson "sigs.k8s.io/json"
)

const yamlTemplate = `key{num}:
    first_subkey{num}: "Some text that goes on for a while {num}"
    second_subkey{num}: "Some more text that also goes on and on {num}"
    third_subkey{num}:
      - "first list item {num}"
      - "second list item {num}"
      - "third list item {num}"
`

func yamlDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:     "gopkg.in/yaml.v2",
			Language: "YAML",
			Parser:   ParserFunc(parseYAMLv2),
			Template: yamlTemplate,
			Shape:    ShapeConcat,
		},
		{
			Name:     "gopkg.in/yaml.v3",
			Language: "YAML",
			Parser:   ParserFunc(parseYAMLv3),
			Template: yamlTemplate,
			Shape:    ShapeConcat,
		},
		{
			Name:     "gopkg.in/yaml.v3",
			Variant:  "via JSON",
			Language: "YAML",
			Parser:   ParserFunc(parseYAMLViaJSON),
			Template: yamlTemplate,
			Shape:    ShapeConcat,
		},
		{
			Name:     "github.com/goccy/go-yaml",
			Language: "YAML",
			Parser:   ParserFunc(parseGoccyYAML),
			Template: yamlTemplate,
			Shape:    ShapeConcat,
		},
	}
}

func parseYAMLv2(data []byte) (interface{}, error) {
	var obj interface{}
	if err := yamlv2.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseYAMLv3(data []byte) (interface{}, error) {
	var obj interface{}
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseGoccyYAML(data []byte) (interface{}, error) {
	var obj interface{}
	if err := goccyyaml.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseYAMLViaJSON first converts the given YAML to JSON, and then decodes
// the JSON case-sensitively with sigs.k8s.io/json. This is the decoding path
// used by the Kubernetes API machinery.
func parseYAMLViaJSON(data []byte) (interface{}, error) {
	jsonBytes, err := YAMLToJSON(data)
	if err != nil {
		return nil, err
	}

	var obj interface{}
	if err := kubejson.UnmarshalCaseSensitivePreserveInts(jsonBytes, &obj); err != nil {
		return nil, fmt.Errorf("error unmarshaling JSON: %w", err)
	}
	return obj, nil
}

// YAMLToJSON converts YAML to JSON. Since JSON is a subset of YAML,
// passing JSON through this method should be a no-op.
//
// In YAML you can have binary and null keys in your maps. These are invalid
// in JSON, and therefore int, bool and float keys are converted to strings
// implicitly. Null and binary keys are rejected.
func YAMLToJSON(yamlBytes []byte) ([]byte, error) {
	// Convert the YAML to an object.
	var yamlObj interface{}
	if err := yaml.Unmarshal(yamlBytes, &yamlObj); err != nil {
		return nil, fmt.Errorf("error converting YAML to JSON: %w", err)
	}

	// YAML objects are not completely compatible with JSON objects (e.g. you
	// can have non-string keys in YAML). So, convert the YAML-compatible object
	// to a JSON-compatible object, failing with an error if irrecoverable
	// incompatibilities happen along the way.
	jsonObj, err := Normalize(yamlObj)
	if err != nil {
		return nil, fmt.Errorf("error converting YAML to JSON: %w", err)
	}

	// Convert this object to JSON and return the data.
	jsonBytes, err := json.Marshal(jsonObj)
	if err != nil {
		return nil, fmt.Errorf("error converting YAML to JSON: %w", err)
	}
	return jsonBytes, nil
}
