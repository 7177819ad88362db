package privacy

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
)

// SecureDelete overwrites the file with random bytes for the given number of
// passes, syncing after each, then unlinks it. A missing file is not an
// error.
func SecureDelete(path string, passes int) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	size := info.Size()
	for i := 0; i < passes; i++ {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return fmt.Errorf("seek %s: %w", path, err)
		}
		if _, err := io.CopyN(f, rand.Reader, size); err != nil {
			f.Close()
			return fmt.Errorf("overwrite %s: %w", path, err)
		}
		if err := f.Sync(); err != nil {
			f.Close()
			return fmt.Errorf("sync %s: %w", path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return os.Remove(path)
}
