//go:build unix

package textio

import (
	"os"

	"golang.org/x/sys/unix"
)

// flock takes a blocking advisory exclusive lock on f.
func flock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX)
}

func funlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
