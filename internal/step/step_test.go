package step

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/flarebyte/builder/internal/files"
	"github.com/flarebyte/builder/internal/testutil"
)

func fixedDeps(dir string) Deps {
	return Deps{Files: &files.Handler{Getwd: func() (string, error) { return dir, nil }}}
}

func TestRun_UnknownStep(t *testing.T) {
	_, err := Run(context.Background(), "nope", NewReport(nil), Deps{})
	if err == nil || err.Error() != "unknown step: nope" {
		t.Fatalf("unexpected error: %v", err)
	}
	var unknown ErrUnknown
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknown, got %T", err)
	}
}

func TestDefaultSteps_Registered(t *testing.T) {
	for _, name := range append(DefaultSteps, "load-config", "list-files") {
		if !Known(name) {
			t.Fatalf("step %q not registered", name)
		}
	}
}

func TestRunAll_DefaultsNoArgs(t *testing.T) {
	out, err := RunAll(context.Background(), NewReport(nil), DefaultSteps, fixedDeps("/work/here"), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{
		"Hello, Builder!",
		"2 + 3 = 5",
		"Processed data: 15",
		"Working directory: /work/here",
	}
	if got := out.Texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines\nwant: %q\n got: %q", want, got)
	}
}

func TestRunAll_WithArgs(t *testing.T) {
	var seen []string
	after := func(name string, _ Report) { seen = append(seen, name) }
	out, err := RunAll(context.Background(), NewReport([]string{"a", "b"}), DefaultSteps, fixedDeps("/w"), after)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	last := out.Lines[len(out.Lines)-1]
	if last.Step != "echo-args" || last.Text != "Arguments: [a b]" {
		t.Fatalf("unexpected last line: %+v", last)
	}
	if !reflect.DeepEqual(seen, DefaultSteps) {
		t.Fatalf("after hook saw %v", seen)
	}
}

func TestRunAll_StopsOnError(t *testing.T) {
	deps := Deps{Files: &files.Handler{Getwd: func() (string, error) { return "", errors.New("removed") }}}
	_, err := RunAll(context.Background(), NewReport(nil), DefaultSteps, deps, nil)
	if err == nil || err.Error() != "working directory: removed" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSteps_DoNotShareLines(t *testing.T) {
	base, err := Run(context.Background(), "greet", NewReport(nil), Deps{})
	if err != nil {
		t.Fatalf("greet: %v", err)
	}
	a, _ := Run(context.Background(), "add", base, Deps{})
	b, _ := Run(context.Background(), "process-data", base, Deps{})
	if a.Lines[1].Step != "add" || b.Lines[1].Step != "process-data" {
		t.Fatalf("lines aliased: %+v / %+v", a.Lines, b.Lines)
	}
}

func TestPrepared(t *testing.T) {
	if got := Prepared(nil); !reflect.DeepEqual(got, DefaultSteps) {
		t.Fatalf("unexpected default order: %v", got)
	}
	meta := &Meta{Files: &FilesMeta{Enabled: true}}
	want := []string{"greet", "add", "process-data", "working-directory", "list-files", "echo-args"}
	if got := Prepared(meta); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestProcessData_LuaReduce(t *testing.T) {
	in := InputsMeta{Data: []int{1, 2, 3, 4, 5}, ReduceInline: "acc + item"}
	got, err := ProcessData(context.Background(), in)
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if got != 15 {
		t.Fatalf("want 15, got %d", got)
	}
}

func TestProcessData_LuaReduceExplicitReturn(t *testing.T) {
	in := InputsMeta{Data: []int{2, 3, 4}, ReduceInline: "if acc == 0 then return item end\nreturn acc * item"}
	got, err := ProcessData(context.Background(), in)
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if got != 24 {
		t.Fatalf("want 24, got %d", got)
	}
}

func TestProcessData_LuaReduceEmpty(t *testing.T) {
	got, err := ProcessData(context.Background(), InputsMeta{Data: []int{}, ReduceInline: "acc + item"})
	if err != nil || got != 0 {
		t.Fatalf("want 0, got %d (%v)", got, err)
	}
}

func TestProcessData_LuaReduceNotInteger(t *testing.T) {
	_, err := ProcessData(context.Background(), InputsMeta{Data: []int{1}, ReduceInline: "acc + item / 2"})
	if err == nil || err.Error() != "process-data: reduce result is not an integer: 0.5" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessData_LuaReduceOutOfRange(t *testing.T) {
	for _, script := range []string{"1e300", "-1e300", "2^63"} {
		_, err := ProcessData(context.Background(), InputsMeta{Data: []int{1}, ReduceInline: script})
		if err == nil || !strings.HasPrefix(err.Error(), "process-data: reduce result out of range: ") {
			t.Fatalf("%s: unexpected error: %v", script, err)
		}
	}
}

func TestProcessData_LuaReduceLargeInRange(t *testing.T) {
	got, err := ProcessData(context.Background(), InputsMeta{Data: []int{1}, ReduceInline: "2^30"})
	if err != nil || got != 1<<30 {
		t.Fatalf("want %d, got %d (%v)", 1<<30, got, err)
	}
}

func TestProcessData_LuaReduceNotNumber(t *testing.T) {
	_, err := ProcessData(context.Background(), InputsMeta{Data: []int{1}, ReduceInline: "'x'"})
	if err == nil || err.Error() != "process-data: reduce result must be a number, got string" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessData_LuaReduceTimeout(t *testing.T) {
	_, err := ProcessData(context.Background(), InputsMeta{Data: []int{1}, ReduceInline: "while true do end"})
	if err == nil || err.Error() != "process-data: sandbox timeout" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessData_LuaSandboxHasNoOS(t *testing.T) {
	_, err := ProcessData(context.Background(), InputsMeta{Data: []int{1}, ReduceInline: "return os.time()"})
	if err == nil || !strings.HasPrefix(err.Error(), "process-data: ") {
		t.Fatalf("expected sandbox error, got %v", err)
	}
}

func TestProcessData_Aggregate(t *testing.T) {
	got, err := ProcessData(context.Background(), InputsMeta{Data: []int{4, 9, 2}, Aggregate: "max"})
	if err != nil || got != 9 {
		t.Fatalf("want 9, got %d (%v)", got, err)
	}
}

func TestLoadConfig_DefaultsWhenNoPath(t *testing.T) {
	out, err := LoadConfig(context.Background(), NewReport([]string{"x"}), Deps{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Meta.Config == nil || out.Meta.Config.ConfigVersion != "1" {
		t.Fatalf("unexpected config meta: %+v", out.Meta.Config)
	}
	if !reflect.DeepEqual(*out.Meta.Inputs, defaultInputs()) {
		t.Fatalf("unexpected inputs: %+v", *out.Meta.Inputs)
	}
	if !reflect.DeepEqual(out.Meta.Args, []string{"x"}) {
		t.Fatalf("args lost: %v", out.Meta.Args)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	d := t.TempDir()
	cfg := filepath.Join(d, "b.cue")
	content := "configVersion: \"1\"\ngreet: name: \"Grace\"\ndata: values: [10, 20]\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	in := Report{Lines: []Line{}, Meta: &Meta{ConfigPath: cfg}}
	out, err := RunAll(context.Background(), in, []string{"load-config", "greet", "process-data"}, Deps{}, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Meta.ConfigPath != "" {
		t.Fatalf("configPath should be cleared")
	}
	want := []string{"Hello, Grace!", "Processed data: 30"}
	if got := out.Texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	if err := testutil.WriteTree(root, map[string]string{
		".gitignore": "*.tmp\n",
		"a.txt":      "a",
		"b.tmp":      "b",
	}); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	in := Report{Lines: []Line{}, Meta: &Meta{Files: &FilesMeta{Enabled: true}}}
	out, err := Run(context.Background(), "list-files", in, fixedDeps(root))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"Files: 2", "  .gitignore", "  a.txt"}
	if got := out.Texts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %q, got %q", want, got)
	}
}
