//go:build darwin

package persist

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync uses F_FULLFSYNC on macOS for power-loss durability, grounded
// on hive/dirty/flush_darwin.go's fdatasync: macOS has no real fdatasync,
// and a plain fsync does not guarantee the drive's write cache was
// flushed.
func fdatasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	if err != nil {
		return unix.Fsync(int(f.Fd()))
	}
	return nil
}
