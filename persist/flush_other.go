//go:build windows || (!linux && !freebsd && !darwin)

package persist

import "os"

// fdatasync falls back to os.File.Sync on platforms with no dedicated
// durable-flush syscall wired.
func fdatasync(f *os.File) error {
	return f.Sync()
}
