package atomicfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write creates filename by writing into a temporary file in the same
// directory and renaming it into place, so readers never see a partial file.
// Missing parent directories are created.
func Write(filename string, fn func(w io.Writer) error) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	// The temp file must live on the same filesystem for the rename to be atomic
	tmp, err := os.CreateTemp(dir, ".goshore.*"+filepath.Ext(filename))
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := fn(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Chmod(filename, 0644)
}
