package render

import (
	"fmt"
	"os"
	"path/filepath"

	"mrm2dfdl/internal/dfdl"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile renders root and writes it to path, creating the parent
// directory if it doesn't exist. The file is replaced atomically, so a
// failed write never leaves a truncated document behind.
func WriteFile(root *dfdl.Node, path string) error {
	data, err := Bytes(root)
	if err != nil {
		return err
	}

	return WriteBytes(data, path)
}

// WriteBytes writes already rendered data to path.
func WriteBytes(data []byte, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
