package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether path exists. Errors other than "not exist" are
// returned so callers can treat them as fatal.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat: %w", err)
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteText truncates path and writes content to it. The parent directory
// must already exist.
func WriteText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteTextUnder writes content to path, creating missing directories between
// root and path. root itself must exist: a missing project root is an error.
func WriteTextUnder(root, path, content string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("project root %s is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project root %s is not a directory", root)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s is outside project root %s", path, root)
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return WriteText(path, content)
}
