package decodebench

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

const funcPluginSource = `package main

import (
	"errors"
	"strings"
)

func Unmarshal(data []byte, v interface{}) error {
	p, ok := v.(*interface{})
	if !ok {
		return errors.New("unsupported target")
	}
	*p = map[string]interface{}{"plugin": strings.TrimSpace(string(data))}
	return nil
}

func main() {}
`

const varPluginSource = `package main

import "strings"

var Unmarshal = func(data []byte, v interface{}) error {
	*v.(*interface{}) = map[string]interface{}{"variable": strings.TrimSpace(string(data))}
	return nil
}

func main() {}
`

const wrongTypePluginSource = `package main

var Unmarshal = 42

func main() {}
`

const nilVarPluginSource = `package main

var Unmarshal func(data []byte, v interface{}) error

func main() {}
`

// buildPlugin compiles source as a Go plugin named module and returns the
// path of the shared object. The test is skipped when the toolchain or the
// platform cannot produce plugins.
func buildPlugin(t *testing.T, module, source string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping plugin build in short mode")
	}
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
	default:
		t.Skipf("plugins are not supported on %s", runtime.GOOS)
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not found")
	}
	out, err := exec.Command(goBin, "env", "CGO_ENABLED", "GOVERSION").Output()
	if err != nil {
		t.Skipf("error running go env: %v", err)
	}
	env := strings.Fields(string(out))
	if len(env) != 2 || env[0] != "1" {
		t.Skip("plugins require cgo")
	}
	if env[1] != runtime.Version() {
		t.Skipf("go command is %s, test binary is %s", env[1], runtime.Version())
	}

	dir := t.TempDir()
	files := map[string]string{
		"go.mod":  "module " + module + "\n\ngo 1.21\n",
		"main.go": source,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	so := filepath.Join(dir, module+".so")
	cmd := exec.Command(goBin, "build", "-buildmode=plugin", "-o", so, ".")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GOWORK=off", "GOFLAGS=", "GOTOOLCHAIN=local")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("error building plugin: %v\n%s", err, out)
	}
	return so
}

// skipIncompatiblePlugin skips the test when the plugin could be built but
// not loaded into this test binary, for example because the binary was built
// without cgo or with -race.
func skipIncompatiblePlugin(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	for _, msg := range []string{"not implemented", "different version of package", "built with a different"} {
		if strings.Contains(err.Error(), msg) {
			t.Skipf("plugin cannot be loaded into the test binary: %v", err)
		}
	}
}

func TestCONLPluginOverride(t *testing.T) {
	tests := []struct {
		name   string
		module string
		source string
		want   interface{}
	}{
		{
			name:   "function",
			module: "conlpluginfunc",
			source: funcPluginSource,
			want:   map[string]interface{}{"plugin": "key = value"},
		},
		{
			name:   "function variable",
			module: "conlpluginvar",
			source: varPluginSource,
			want:   map[string]interface{}{"variable": "key = value"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := buildPlugin(t, tt.module, tt.source)

			p := newCONLParser(path)
			err := p.Available()
			skipIncompatiblePlugin(t, err)
			if err != nil {
				t.Fatalf("unexpected error loading plugin: %v", err)
			}
			got, err := p.Parse([]byte("key = value\n"))
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", spew.Sdump(got), spew.Sdump(tt.want))
			}

			var found bool
			for _, d := range Available(Registry(path), nil) {
				if d.Language == "CONL" {
					found = true
				}
			}
			if !found {
				t.Error("CONL descriptor is unavailable with a working plugin")
			}
		})
	}
}

func TestCONLPluginBadSymbol(t *testing.T) {
	tests := []struct {
		name    string
		module  string
		source  string
		wantErr string
	}{
		{name: "wrong type", module: "conlpluginbad", source: wrongTypePluginSource, wantErr: "has type *int"},
		{name: "nil function", module: "conlpluginnil", source: nilVarPluginSource, wantErr: "is nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := buildPlugin(t, tt.module, tt.source)

			p := newCONLParser(path)
			err := p.Available()
			skipIncompatiblePlugin(t, err)
			if err == nil {
				t.Fatal("expected an error for a plugin with an unusable Unmarshal symbol")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if _, err := p.Parse([]byte("key = value\n")); err == nil {
				t.Error("expected Parse to fail when the plugin did not load")
			}
		})
	}
}
