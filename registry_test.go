package decodebench

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

// unavailableParser simulates a library that cannot be loaded.
type unavailableParser struct{}

func (unavailableParser) Parse([]byte) (interface{}, error) {
	return nil, errors.New("unavailable parser called")
}

func (unavailableParser) Available() error { return errors.New("not installed") }

func TestRegistryLabelsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Registry("") {
		if seen[d.Label()] {
			t.Errorf("duplicate label %q", d.Label())
		}
		seen[d.Label()] = true
	}
}

func TestRegistryExpandedDocuments(t *testing.T) {
	const n = 5
	for _, d := range Available(Registry(""), nil) {
		t.Run(d.Label(), func(t *testing.T) {
			data, err := Expand(d, n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			obj, err := d.Parser.Parse(data)
			if err != nil {
				t.Fatalf("expanded document does not parse: %v\n%s", err, data)
			}
			normalized, err := Normalize(obj)
			if err != nil {
				t.Fatalf("unexpected normalize error: %v", err)
			}
			m, ok := normalized.(map[string]interface{})
			if !ok {
				t.Fatalf("expected a map, got %T", normalized)
			}
			if len(m) != n {
				t.Errorf("expected %d top-level keys, got %d", n, len(m))
			}
			for num := 0; num < n; num++ {
				if _, ok := m[fmt.Sprintf("key%d", num)]; !ok {
					t.Errorf("missing key%d", num)
				}
			}
		})
	}
}

func TestAvailableExclude(t *testing.T) {
	descs := Registry("")
	got := Available(descs, []string{"encoding/json", "gopkg.in/yaml.v3 (via JSON)"})
	for _, d := range got {
		switch d.Label() {
		case "encoding/json", "gopkg.in/yaml.v3 (via JSON)":
			t.Errorf("excluded library %q is available", d.Label())
		}
	}
	if len(Registry("")) != len(descs) {
		t.Error("Available modified its input")
	}
}

func TestAvailableUnknownExclude(t *testing.T) {
	var logs bytes.Buffer
	defer slog.SetDefault(slog.Default())
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))

	descs := jsonDescriptors()[:2]
	got := Available(descs, []string{"encoding/json", "encoding/jsonn", "encoding/jsonn"})
	if len(got) != 1 {
		t.Fatalf("expected 1 available library, got %d", len(got))
	}

	out := logs.String()
	if !strings.Contains(out, `msg="Excluded library not found" library=encoding/jsonn`) {
		t.Errorf("expected a warning for the unknown label, got:\n%s", out)
	}
	if n := strings.Count(out, "Excluded library not found"); n != 1 {
		t.Errorf("expected 1 warning, got %d:\n%s", n, out)
	}
	if strings.Contains(out, "library=encoding/json\n") {
		t.Errorf("unexpected warning for a matched label:\n%s", out)
	}
}

func TestAvailableMissingLibrary(t *testing.T) {
	missing := Descriptor{
		Name:     "missing",
		Language: "JSON",
		Parser:   unavailableParser{},
		Template: jsonTemplate,
		Shape:    ShapeWrapped,
	}
	descs := append([]Descriptor{missing}, jsonDescriptors()[0], yamlDescriptors()[1])

	available := Available(descs, nil)
	if len(available) != 2 {
		t.Fatalf("expected 2 available libraries, got %d", len(available))
	}
	if err := CheckConsistency(available); err != nil {
		t.Fatalf("unexpected consistency error: %v", err)
	}

	cfg := Config{Repeat: 1, Number: 1, TemplateNumber: 2}
	results, err := Timer{}.Run(available, cfg)
	if err != nil {
		t.Fatalf("unexpected timing error: %v", err)
	}
	if _, ok := results["missing"]; ok {
		t.Error("missing library appears in results")
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %v", results)
	}
}

func TestCONLPluginMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.so")
	d := conlDescriptor(path)
	if err := d.Parser.Available(); err == nil {
		t.Fatal("expected a missing plugin to make CONL unavailable")
	}
	for _, d := range Available(Registry(path), nil) {
		if d.Name == "github.com/ConradIrwin/conl-go" {
			t.Error("CONL descriptor is available with a missing plugin")
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DECODEBENCH_PLUGIN_DIR", "plugins")

	got, err := expandPath("~/$DECODEBENCH_PLUGIN_DIR/conl.so")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(home, "plugins", "conl.so")
	if got != want {
		t.Errorf("expandPath() = %q, want %q", got, want)
	}
}
