//go:build linux || freebsd

package persist

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes f's data to stable storage on Linux/FreeBSD, grounded
// on hive/dirty/flush_unix.go's identical call.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
