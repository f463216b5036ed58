package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExists is returned when the target bundle directory already exists.
var ErrExists = errors.New("bundle already exists")

// Write materializes b as root/b.Name and returns the directory path.
//
// Existing bundles are never overwritten. Both files are written to a
// staging directory inside root and moved into place with a single rename.
func Write(root string, b *Bundle) (string, error) {
	if err := ValidateName(b.Name); err != nil {
		return "", err
	}

	target := filepath.Join(root, b.Name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, target)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to check %s: %w", target, err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", root, err)
	}

	staging, err := os.MkdirTemp(root, "."+b.Name+".tmp-")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = os.RemoveAll(staging)
		}
	}()

	for _, f := range b.Files() {
		path := filepath.Join(staging, f.Name)
		if err := os.WriteFile(path, f.Data, fs.FileMode(f.Mode)); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
		// WriteFile applies the umask; the script must stay executable.
		if err := os.Chmod(path, fs.FileMode(f.Mode)); err != nil {
			return "", fmt.Errorf("failed to set mode on %s: %w", f.Name, err)
		}
	}

	// MkdirTemp creates 0700 directories.
	if err := os.Chmod(staging, 0o755); err != nil {
		return "", fmt.Errorf("failed to set mode on staging directory: %w", err)
	}

	if err := os.Rename(staging, target); err != nil {
		if _, statErr := os.Stat(target); statErr == nil {
			return "", fmt.Errorf("%w: %s", ErrExists, target)
		}
		return "", fmt.Errorf("failed to move bundle into place: %w", err)
	}
	committed = true

	return target, nil
}
