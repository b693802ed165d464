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
	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
)

const tomlTemplate = `[key{num}]
first_subkey{num} = "Some text that goes on for a while {num}"
second_subkey{num} = "Some more text that also goes on and on {num}"
third_subkey{num} = [
    "first list item {num}",
    "second list item {num}",
    "third list item {num}"
]
`

func tomlDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:     "github.com/BurntSushi/toml",
			Language: "TOML",
			Parser:   ParserFunc(parseBurntSushiTOML),
			Template: tomlTemplate,
			Shape:    ShapeConcat,
		},
		{
			Name:     "github.com/pelletier/go-toml/v2",
			Language: "TOML",
			Parser:   ParserFunc(parseGoTOML),
			Template: tomlTemplate,
			Shape:    ShapeConcat,
		},
	}
}

// A TOML document is always a table, so both libraries decode into a map.

func parseBurntSushiTOML(data []byte) (interface{}, error) {
	obj := map[string]interface{}{}
	if err := toml.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseGoTOML(data []byte) (interface{}, error) {
	obj := map[string]interface{}{}
	if err := gotoml.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
