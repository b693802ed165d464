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
	"reflect"
	"strconv"
)

// Normalize converts the generic value produced by any of the registered
// parsers into the form encoding/json produces when decoding into an
// interface{}: maps become map[string]interface{}, sequences become
// []interface{} and numbers become float64 where the conversion is exact.
// Other scalars are returned unchanged.
//
// Parsers disagree on the Go types they hand back for the same document
// (gopkg.in/yaml.v2 returns map[interface{}]interface{}, for example), so
// values must be normalized before they can be compared with reflect.DeepEqual.
func Normalize(obj interface{}) (interface{}, error) {
	switch typed := obj.(type) {
	case map[string]interface{}:
		strMap := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			nv, err := Normalize(v)
			if err != nil {
				return nil, err
			}
			strMap[k] = nv
		}
		return strMap, nil
	case map[interface{}]interface{}:
		// JSON does not support arbitrary keys in a map, so we must convert
		// these keys to strings.
		strMap := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			keyString, err := keyToString(k)
			if err != nil {
				return nil, fmt.Errorf("%w, value: %+#v", err, v)
			}
			nv, err := Normalize(v)
			if err != nil {
				return nil, err
			}
			strMap[keyString] = nv
		}
		return strMap, nil
	case []interface{}:
		arr := make([]interface{}, len(typed))
		for i, v := range typed {
			nv, err := Normalize(v)
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	case nil, string, bool, float64:
		return obj, nil
	case float32:
		return float64(typed), nil
	case int:
		return intToFloat(int64(typed)), nil
	case int64:
		return intToFloat(typed), nil
	case uint64:
		if typed <= maxExactInt {
			return float64(typed), nil
		}
		return typed, nil
	case json.Number:
		if f, err := typed.Float64(); err == nil {
			return f, nil
		}
		return typed, nil
	}

	// Parsers with their own container types (for example map[string]string
	// or []string) are walked with reflection.
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Map:
		strMap := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keyString, err := keyToString(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			nv, err := Normalize(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			strMap[keyString] = nv
		}
		return strMap, nil
	case reflect.Slice, reflect.Array:
		arr := make([]interface{}, rv.Len())
		for i := range arr {
			nv, err := Normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intToFloat(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u <= maxExactInt {
			return float64(u), nil
		}
		return obj, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Normalize(rv.Elem().Interface())
	}
	return obj, nil
}

// maxExactInt is the largest integer magnitude a float64 represents exactly.
const maxExactInt = 1 << 53

// intToFloat converts i to float64 unless precision would be lost, in which
// case i is returned as is.
func intToFloat(i int64) interface{} {
	if i >= -maxExactInt && i <= maxExactInt {
		return float64(i)
	}
	return i
}

// keyToString resolves a map key to the string encoding/json would use.
func keyToString(k interface{}) (string, error) {
	switch typedKey := k.(type) {
	case string:
		return typedKey, nil
	case int:
		return strconv.Itoa(typedKey), nil
	case int64:
		// go-yaml will only return an int64 as a key if the system
		// architecture is 32-bit and the key's value is between 32-bit
		// and 64-bit. Otherwise the key type will simply be int.
		return strconv.FormatInt(typedKey, 10), nil
	case uint64:
		return strconv.FormatUint(typedKey, 10), nil
	case float64:
		// Same conversion to string as go-yaml uses when marshaling floats.
		s := strconv.FormatFloat(typedKey, 'g', -1, 32)
		switch s {
		case "+Inf":
			s = ".inf"
		case "-Inf":
			s = "-.inf"
		case "NaN":
			s = ".nan"
		}
		return s, nil
	case bool:
		if typedKey {
			return "true", nil
		}
		return "false", nil
	case fmt.Stringer:
		return typedKey.String(), nil
	}
	return "", fmt.Errorf("unsupported map key of type: %s, key: %+#v", reflect.TypeOf(k), k)
}
