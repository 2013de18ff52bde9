//go:build darwin

package fdkit

import "golang.org/x/sys/unix"

// Advisory-lock open modes, available on the BSD family only.
const (
	ExclusiveLock OpenMode = unix.O_EXLOCK
	SharedLock    OpenMode = unix.O_SHLOCK
)
