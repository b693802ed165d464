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
	"runtime"

	"github.com/bytedance/sonic"
	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	kubejson "sigs.k8s.io/json"
)

// The JSON template must always be a complete, self-contained object or
// array. The outermost {} or [] is stripped during data generation and
// re-inserted around the final dataset.
const jsonTemplate = `{
"key{num}": {
    "first_subkey{num}": "Some text that goes on for a while {num}",
    "second_subkey{num}": "Some more text that also goes on and on {num}",
    "third_subkey{num}": [
        "first list item {num}",
        "second list item {num}",
        "third list item {num}"
    ]
}
}
`

func jsonDescriptors() []Descriptor {
	return []Descriptor{
		{
			Name:     "encoding/json",
			Language: "JSON",
			Parser:   ParserFunc(parseStdJSON),
			Template: jsonTemplate,
			Shape:    ShapeWrapped,
		},
		{
			Name:     "sigs.k8s.io/json",
			Language: "JSON",
			Parser:   ParserFunc(parseKubeJSON),
			Template: jsonTemplate,
			Shape:    ShapeWrapped,
		},
		{
			Name:     "github.com/json-iterator/go",
			Language: "JSON",
			Parser:   jsoniterParser{api: jsoniter.ConfigCompatibleWithStandardLibrary},
			Template: jsonTemplate,
			Shape:    ShapeWrapped,
		},
		{
			Name:     "github.com/json-iterator/go",
			Variant:  "fastest",
			Language: "JSON",
			Parser:   jsoniterParser{api: jsoniter.ConfigFastest},
			Template: jsonTemplate,
			Shape:    ShapeWrapped,
		},
		{
			Name:     "github.com/goccy/go-json",
			Language: "JSON",
			Parser:   ParserFunc(parseGoccyJSON),
			Template: jsonTemplate,
			Shape:    ShapeWrapped,
		},
		{
			Name:     "github.com/bytedance/sonic",
			Language: "JSON",
			Parser:   sonicParser{},
			Template: jsonTemplate,
			Shape:    ShapeWrapped,
		},
	}
}

func parseStdJSON(data []byte) (interface{}, error) {
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseKubeJSON(data []byte) (interface{}, error) {
	var obj interface{}
	if err := kubejson.UnmarshalCaseSensitivePreserveInts(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseGoccyJSON(data []byte) (interface{}, error) {
	var obj interface{}
	if err := gojson.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

type jsoniterParser struct {
	api jsoniter.API
}

func (p jsoniterParser) Parse(data []byte) (interface{}, error) {
	var obj interface{}
	if err := p.api.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p jsoniterParser) Available() error { return nil }

type sonicParser struct{}

func (sonicParser) Parse(data []byte) (interface{}, error) {
	var obj interface{}
	if err := sonic.ConfigStd.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Available reports an error on architectures where sonic falls back to
// encoding/json, since timing it there would measure the wrong library.
func (sonicParser) Available() error {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return nil
	}
	return fmt.Errorf("sonic: unsupported architecture %s", runtime.GOARCH)
}
