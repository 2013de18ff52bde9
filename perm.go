package fdkit

import "golang.org/x/sys/unix"

// Perm is a file permission bitmask (mode bits). Values combine by bitwise
// OR and are sourced from the host platform's S_I* definitions.
type Perm uint32

// Permission bits.
const (
	PermNone Perm = 0

	OwnerRead  Perm = unix.S_IRUSR
	OwnerWrite Perm = unix.S_IWUSR
	OwnerExec  Perm = unix.S_IXUSR
	OwnerAll   Perm = unix.S_IRWXU

	GroupRead  Perm = unix.S_IRGRP
	GroupWrite Perm = unix.S_IWGRP
	GroupExec  Perm = unix.S_IXGRP
	GroupAll   Perm = unix.S_IRWXG

	OtherRead  Perm = unix.S_IROTH
	OtherWrite Perm = unix.S_IWOTH
	OtherExec  Perm = unix.S_IXOTH
	OtherAll   Perm = unix.S_IRWXO

	AllPerm Perm = unix.S_IRWXU | unix.S_IRWXG | unix.S_IRWXO

	SetUID Perm = unix.S_ISUID
	SetGID Perm = unix.S_ISGID
	Sticky Perm = unix.S_ISVTX

	// PermMask isolates exactly the bits the OS interprets as permission
	// semantics: owner/group/other rwx plus set-uid, set-gid and sticky.
	PermMask Perm = unix.S_IRWXU | unix.S_IRWXG | unix.S_IRWXO |
		unix.S_ISUID | unix.S_ISGID | unix.S_ISVTX

	// PermUnknown is a sentinel for "no meaningful value": all bits of the
	// traditional 16-bit mode field, guaranteed to fail the mask test.
	PermUnknown Perm = 0xffff
)

// Valid reports whether p carries only bits that PermMask recognizes.
// PermUnknown is never valid.
func (p Perm) Valid() bool {
	return p&^PermMask == 0
}
