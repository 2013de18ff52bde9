//go:build linux

package fdkit

import "golang.org/x/sys/unix"

// Open modes that only Linux defines.
const (
	Direct    OpenMode = unix.O_DIRECT
	LargeFile OpenMode = unix.O_LARGEFILE
	NoAtime   OpenMode = unix.O_NOATIME
	PathOnly  OpenMode = unix.O_PATH
	TmpFile   OpenMode = unix.O_TMPFILE
)
