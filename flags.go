package fdkit

import "golang.org/x/sys/unix"

// OpenMode controls how a file is opened. Values combine by bitwise OR and
// are sourced from the host platform's own O_* definitions; they are not
// stable across OS families, so callers must stick to the named constants.
type OpenMode int

// File open modes available on every supported platform. Members that only
// exist on some OS families (for example large-file or advisory-lock
// opening) live in the build-tagged flag files.
const (
	Append    OpenMode = unix.O_APPEND
	Async     OpenMode = unix.O_ASYNC
	CloseExec OpenMode = unix.O_CLOEXEC
	Create    OpenMode = unix.O_CREAT
	Directory OpenMode = unix.O_DIRECTORY
	DSync     OpenMode = unix.O_DSYNC
	Excl      OpenMode = unix.O_EXCL
	NoCtty    OpenMode = unix.O_NOCTTY
	NoFollow  OpenMode = unix.O_NOFOLLOW
	NDelay    OpenMode = unix.O_NDELAY
	NonBlock  OpenMode = unix.O_NONBLOCK
	ReadOnly  OpenMode = unix.O_RDONLY
	ReadWrite OpenMode = unix.O_RDWR
	Sync      OpenMode = unix.O_SYNC
	Truncate  OpenMode = unix.O_TRUNC
	WriteOnly OpenMode = unix.O_WRONLY
)
