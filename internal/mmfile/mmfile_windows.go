//go:build windows

package mmfile

import (
	"os"
)

// Map reads the file at path into memory; Windows gets the plain-read
// fallback rather than a real mapping since this module has no memory
// mapping syscalls wired for that platform (§4.15 names mmap-on-unix,
// raw-read-elsewhere explicitly).
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
