package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
)

// compileCUE loads and compiles a CUE file at the given path.
func compileCUE(ctx *cue.Context, path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

// decodeField decodes the value at path, resolving schema defaults first.
func decodeField(v cue.Value, path string, dst any) error {
	f := v.LookupPath(cue.ParsePath(path))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", path)
	}
	if d, ok := f.Default(); ok {
		f = d
	}
	if err := f.Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", path, err)
	}
	return nil
}

// checkFields rejects unknown fields and fields of the wrong kind before the
// file is unified with the schema, so errors name the offending path.
func checkFields(v cue.Value) error {
	it, err := v.Fields()
	if err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}
	for it.Next() {
		name := it.Selector().String()
		if isKnownField(name) {
			continue
		}
		if !isSection(name) {
			return fmt.Errorf("unknown field: %s", name)
		}
		sv := it.Value()
		if sv.Kind() != cue.StructKind {
			return fmt.Errorf("invalid type for field: %s (expected struct)", name)
		}
		sub, err := sv.Fields()
		if err != nil {
			return fmt.Errorf("invalid config: %v", err)
		}
		for sub.Next() {
			p := name + "." + sub.Selector().String()
			if !isKnownField(p) {
				return fmt.Errorf("unknown field: %s", p)
			}
		}
	}
	for _, f := range fieldKinds {
		fv := v.LookupPath(cue.ParsePath(f.path))
		if !fv.Exists() {
			continue
		}
		if fv.Kind() != f.kind {
			return fmt.Errorf("invalid type for field: %s (expected %s)", f.path, f.kind)
		}
	}
	return requireIntList(v, "data.values")
}

func requireIntList(v cue.Value, path string) error {
	fv := v.LookupPath(cue.ParsePath(path))
	if !fv.Exists() {
		return nil
	}
	list, err := fv.List()
	if err != nil {
		return fmt.Errorf("invalid type for field: %s (expected list)", path)
	}
	for i := 0; list.Next(); i++ {
		if list.Value().Kind() != cue.IntKind {
			return fmt.Errorf("invalid type for field: %s[%d] (expected int)", path, i)
		}
	}
	return nil
}

func isKnownField(path string) bool {
	for _, f := range fieldKinds {
		if f.path == path {
			return true
		}
	}
	return false
}

func isSection(name string) bool {
	for _, f := range fieldKinds {
		if section, _, ok := strings.Cut(f.path, "."); ok && section == name {
			return true
		}
	}
	return false
}
