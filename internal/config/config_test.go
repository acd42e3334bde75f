package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "builder.cue")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	return p
}

func TestDefaults(t *testing.T) {
	s, err := Defaults()
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	want := Settings{
		ConfigVersion: "1",
		Greet:         Greet{Name: "Builder"},
		Add:           Add{A: 2, B: 3},
		Data:          Data{Values: []int{1, 2, 3, 4, 5}, Aggregate: "sum"},
		Files:         Files{Root: "."},
		Output:        Output{Format: "text"},
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("unexpected defaults\nwant: %+v\n got: %+v", want, s)
	}
}

func TestLoad_EmptyPathIsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Greet.Name != "Builder" || s.Output.Format != "text" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg := writeConfig(t, `{
  configVersion: "1"
  greet: name: "Ada"
  add: a: 40
  data: {values: [], aggregate: "product"}
  reduce: inline: "acc + item * 2"
  files: {enabled: true, noGitignore: true}
  output: format: "yaml"
}
`)
	s, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Greet.Name != "Ada" {
		t.Fatalf("name: %q", s.Greet.Name)
	}
	if s.Add.A != 40 || s.Add.B != 3 {
		t.Fatalf("add: %+v", s.Add)
	}
	if len(s.Data.Values) != 0 || s.Data.Values == nil {
		t.Fatalf("values: %#v", s.Data.Values)
	}
	if s.Data.Aggregate != "product" || s.Reduce.Inline != "acc + item * 2" {
		t.Fatalf("data: %+v reduce: %+v", s.Data, s.Reduce)
	}
	if !s.Files.Enabled || !s.Files.NoGitignore || s.Files.Root != "." {
		t.Fatalf("files: %+v", s.Files)
	}
	if s.Output.Format != "yaml" {
		t.Fatalf("format: %q", s.Output.Format)
	}
}

func TestLoad_RejectsNonCue(t *testing.T) {
	_, err := Load("builder.yaml")
	if err == nil || err.Error() != "unsupported config format: expected .cue" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_MissingVersion(t *testing.T) {
	cfg := writeConfig(t, "greet: name: \"x\"\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "missing required field: configVersion" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_VersionWrongType(t *testing.T) {
	cfg := writeConfig(t, "configVersion: 1\n")
	_, err := Load(cfg)
	if err == nil || err.Error() != "invalid type for field: configVersion (expected string)" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_TypeMismatch(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`add: a: "two"`, "invalid type for field: add.a (expected int)"},
		{`add: b: 2.5`, "invalid type for field: add.b (expected int)"},
		{`greet: name: 7`, "invalid type for field: greet.name (expected string)"},
		{`files: enabled: "yes"`, "invalid type for field: files.enabled (expected bool)"},
		{`data: values: "1,2"`, "invalid type for field: data.values (expected list)"},
		{`data: values: [1, "2"]`, "invalid type for field: data.values[1] (expected int)"},
		{`output: "json"`, "invalid type for field: output (expected struct)"},
	}
	for _, tc := range cases {
		cfg := writeConfig(t, "configVersion: \"1\"\n"+tc.body+"\n")
		_, err := Load(cfg)
		if err == nil || err.Error() != tc.want {
			t.Fatalf("%s: want %q, got %v", tc.body, tc.want, err)
		}
	}
}

func TestLoad_UnknownField(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`greet: nmae: "x"`, "unknown field: greet.nmae"},
		{`fles: enabled: true`, "unknown field: fles"},
	}
	for _, tc := range cases {
		cfg := writeConfig(t, "configVersion: \"1\"\n"+tc.body+"\n")
		_, err := Load(cfg)
		if err == nil || err.Error() != tc.want {
			t.Fatalf("%s: want %q, got %v", tc.body, tc.want, err)
		}
	}
}

func TestLoad_HiddenFieldsIgnored(t *testing.T) {
	cfg := writeConfig(t, "configVersion: \"1\"\n_base: 40\nadd: a: _base + 2\n")
	s, err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Add.A != 42 {
		t.Fatalf("add.a: %d", s.Add.A)
	}
}

func TestLoad_UnknownAggregate(t *testing.T) {
	cfg := writeConfig(t, "configVersion: \"1\"\ndata: aggregate: \"median\"\n")
	_, err := Load(cfg)
	want := `invalid value for data.aggregate: "median" (supported: sum, product, count, min, max)`
	if err == nil || err.Error() != want {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	cfg := writeConfig(t, "configVersion: \"1\"\noutput: format: \"xml\"\n")
	_, err := Load(cfg)
	want := `invalid value for output.format: "xml" (supported: text, json, yaml)`
	if err == nil || err.Error() != want {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	cfg := writeConfig(t, "configVersion: \"1\"\ngreet: {\n")
	_, err := Load(cfg)
	if err == nil || !strings.HasPrefix(err.Error(), "invalid config: ") {
		t.Fatalf("unexpected error: %v", err)
	}
}
