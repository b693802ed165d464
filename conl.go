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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"strings"

	conl "github.com/ConradIrwin/conl-go"
)

const conlTemplate = `key{num}
  first_subkey{num} = Some text that goes on for a while {num}
  second_subkey{num} = Some more text that also goes on and on {num}
  third_subkey{num}
    = first list item {num}
    = second list item {num}
    = third list item {num}
`

// conlPluginSymbol is the symbol looked up in a CONL override plugin. It must
// have the signature of conl.Unmarshal.
const conlPluginSymbol = "Unmarshal"

func conlDescriptor(pluginPath string) Descriptor {
	return Descriptor{
		Name:     "github.com/ConradIrwin/conl-go",
		Language: "CONL",
		Parser:   newCONLParser(pluginPath),
		Template: conlTemplate,
		Shape:    ShapeConcat,
	}
}

type unmarshalFunc func(data []byte, v interface{}) error

// conlParser decodes CONL with the linked conl-go package, or with the
// Unmarshal function of a Go plugin when pluginPath is set.
type conlParser struct {
	pluginPath string
	unmarshal  unmarshalFunc
}

func newCONLParser(pluginPath string) *conlParser {
	p := &conlParser{pluginPath: pluginPath}
	if pluginPath == "" {
		p.unmarshal = func(data []byte, v interface{}) error {
			return conl.Unmarshal(data, v)
		}
	}
	return p
}

func (p *conlParser) Available() error {
	if p.unmarshal != nil {
		return nil
	}
	fn, err := loadUnmarshalPlugin(p.pluginPath)
	if err != nil {
		return err
	}
	p.unmarshal = fn
	return nil
}

func (p *conlParser) Parse(data []byte) (interface{}, error) {
	if p.unmarshal == nil {
		return nil, errors.New("conl: plugin not loaded")
	}
	var obj interface{}
	if err := p.unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// loadUnmarshalPlugin opens the Go plugin at path and resolves its exported
// Unmarshal function or function variable.
func loadUnmarshalPlugin(path string) (unmarshalFunc, error) {
	abs, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	pl, err := plugin.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("error opening plugin %s: %w", abs, err)
	}
	sym, err := pl.Lookup(conlPluginSymbol)
	if err != nil {
		return nil, fmt.Errorf("error loading plugin %s: %w", abs, err)
	}
	switch fn := sym.(type) {
	case func([]byte, interface{}) error:
		return fn, nil
	case *func([]byte, interface{}) error:
		if *fn == nil {
			return nil, fmt.Errorf("plugin %s: %s is nil", abs, conlPluginSymbol)
		}
		return *fn, nil
	}
	return nil, fmt.Errorf("plugin %s: %s has type %T, want func([]byte, interface{}) error", abs, conlPluginSymbol, sym)
}

// expandPath expands environment variables and a leading ~ in path and
// makes it absolute.
func expandPath(path string) (string, error) {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("error expanding %s: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}
