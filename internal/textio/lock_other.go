//go:build !unix

package textio

import "os"

// Advisory locking is a no-op on platforms without flock.
func flock(*os.File) error   { return nil }
func funlock(*os.File) error { return nil }
