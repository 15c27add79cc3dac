// Package persist writes a finalized buffer to disk durably (§4.15, C15):
// write to a temp file in the same directory, force it to stable storage,
// then atomically rename it over the destination — a reader can never
// observe a partially written document. Grounded on hivekit's
// internal/writer.FileWriter (temp-file + fsync + rename) for the atomic
// write shape, generalized with hive/dirty's platform flush split (msync
// on unix, FlushViewOfFile on Windows, here fdatasync/F_FULLFSYNC/Sync —
// see flush_unix.go / flush_darwin.go / flush_other.go) in place of a
// plain Sync, since a freshly written dartbuf document has no
// dirty-range bookkeeping to coalesce (unlike a long-lived mmap'd hive
// under incremental edits, this module always writes a document in one
// complete pass, per §4.7).
package persist

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile atomically writes data (a finalized buffer's bytes, typically
// buf.Bytes()) to path: it writes to a sibling temp file, fdatasyncs it,
// then renames it into place. On any failure the temp file is removed and
// the destination path is left untouched.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dartbuf-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := fdatasync(tmp); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
