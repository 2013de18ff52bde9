package fdkit

import "golang.org/x/sys/unix"

// FileType identifies the kind of filesystem object a raw mode value
// describes, after masking with TypeMask.
type FileType uint32

// File types, sourced from the host platform's S_IF* definitions.
const (
	TypeMask FileType = unix.S_IFMT

	TypeRegular   FileType = unix.S_IFREG
	TypeDirectory FileType = unix.S_IFDIR
	TypeSymlink   FileType = unix.S_IFLNK
	TypeBlockDev  FileType = unix.S_IFBLK
	TypeCharDev   FileType = unix.S_IFCHR
	TypeFIFO      FileType = unix.S_IFIFO
	TypeSocket    FileType = unix.S_IFSOCK
)

// String returns a short name for the type, for diagnostics.
func (t FileType) String() string {
	switch t {
	case TypeRegular:
		return "regular file"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeBlockDev:
		return "block device"
	case TypeCharDev:
		return "character device"
	case TypeFIFO:
		return "fifo"
	case TypeSocket:
		return "socket"
	default:
		return "unknown"
	}
}
