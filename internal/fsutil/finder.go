// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError lists the locations that were checked for a missing file.
type NotFoundError struct {
	Name    string
	Checked []string
}

func (e *NotFoundError) Error() string {
	quoted := make([]string, len(e.Checked))
	for i, c := range e.Checked {
		quoted[i] = "'" + c + "'"
	}
	return fmt.Sprintf("can't find '%s': checked %s", e.Name, strings.Join(quoted, ", "))
}

// Unwrap makes errors.Is(err, fs.ErrNotExist) hold.
func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// Locate returns the path of the first regular file named name found in dirs,
// in order, falling back to name itself relative to the working directory.
// An absolute name is only checked as is.
func Locate(name string, dirs ...string) (string, error) {
	if name == "" {
		panic("name must not be empty")
	}

	var candidates []string
	if filepath.IsAbs(name) {
		candidates = []string{name}
	} else {
		seen := make(map[string]bool)
		for _, dir := range append(dirs, ".") {
			if dir == "" {
				continue
			}
			path := filepath.Join(dir, name)
			if seen[path] {
				continue
			}
			seen[path] = true
			candidates = append(candidates, path)
		}
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	checked := make([]string, len(candidates))
	for i, c := range candidates {
		checked[i] = filepath.Dir(c)
	}
	return "", &NotFoundError{Name: name, Checked: checked}
}
