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
	maml "github.com/KimNorgaard/go-maml"
)

// MAML documents have a single root value, so the template is wrapped like
// the JSON one. Entries are separated by newlines; commas are optional.
const mamlTemplate = `{
  key{num}: {
    first_subkey{num}: "Some text that goes on for a while {num}"
    second_subkey{num}: "Some more text that also goes on and on {num}"
    third_subkey{num}: [
      "first list item {num}"
      "second list item {num}"
      "third list item {num}"
    ]
  }
}
`

func mamlDescriptor() Descriptor {
	return Descriptor{
		Name:      "github.com/KimNorgaard/go-maml",
		Language:  "MAML",
		Parser:    ParserFunc(parseMAML),
		Template:  mamlTemplate,
		Shape:     ShapeWrapped,
		Separator: "\n",
	}
}

func parseMAML(data []byte) (interface{}, error) {
	var obj interface{}
	if err := maml.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
