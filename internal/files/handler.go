// Package files answers questions about the process working directory.
package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Handler reads the working directory and lists files below a root.
type Handler struct {
	// Getwd reports the working directory. It is called on every query and
	// never cached.
	Getwd func() (string, error)
}

// NewHandler returns a Handler backed by the operating system.
func NewHandler() *Handler {
	return &Handler{Getwd: os.Getwd}
}

// Cwd returns the absolute working directory of the process.
func (h *Handler) Cwd() (string, error) {
	getwd := os.Getwd
	if h != nil && h.Getwd != nil {
		getwd = h.Getwd
	}
	dir, err := getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}
	return dir, nil
}

// List returns the sorted slash-separated paths of regular files under root,
// relative to root. A relative root is resolved against Cwd. Paths matched by
// a .gitignore found during the walk are skipped unless noGitignore is set;
// the .git directory is always skipped.
func (h *Handler) List(root string, noGitignore bool) ([]string, error) {
	absRoot, err := h.resolve(root)
	if err != nil {
		return nil, err
	}
	ign := newIgnoreSet(absRoot, noGitignore)
	var out []string
	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("list-files: %s: %v", displayPath(absRoot, p), err)
		}
		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel == "." {
				ign.load(rel)
				return nil
			}
			if d.Name() == ".git" || ign.match(rel, true) {
				return filepath.SkipDir
			}
			ign.load(rel)
			return nil
		}
		if !d.Type().IsRegular() || ign.match(rel, false) {
			return nil
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func (h *Handler) resolve(root string) (string, error) {
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}
	cwd, err := h.Cwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, root), nil
}

func displayPath(absRoot, p string) string {
	rel, err := filepath.Rel(absRoot, p)
	if err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(p)
}
