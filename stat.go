package fdkit

import "golang.org/x/sys/unix"

// statPath fetches the metadata for path, following symlinks when follow is
// set. All failures, including nonexistence, come back as *OpError; callers
// that want to treat ENOENT specially inspect the returned error.
func statPath(path string, follow bool) (unix.Stat_t, error) {
	var st unix.Stat_t
	if follow {
		if err := unix.Stat(path, &st); err != nil {
			return st, &OpError{Op: "stat", Path: path, Err: err}
		}
		return st, nil
	}
	if err := unix.Lstat(path, &st); err != nil {
		return st, &OpError{Op: "lstat", Path: path, Err: err}
	}
	return st, nil
}

// FileSize returns the size in bytes of the file at path, following
// symlinks. The size of a nonexistent path is an error, not zero.
func FileSize(path string) (int64, error) {
	st, err := statPath(path, true)
	if err != nil {
		return 0, err
	}
	return st.Size, nil
}

// ExistsAs reports whether path names an object of the wanted type. A
// missing path is false, not an error; any other stat failure is returned.
// Symlinks are followed unless the question is about symlinks themselves.
//
// Contrast with MatchesType, which reports nonexistence as an error.
func ExistsAs(path string, want FileType) (bool, error) {
	st, err := statPath(path, want != TypeSymlink)
	if err != nil {
		if IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return FileType(rawMode(&st))&TypeMask == want, nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) (bool, error) {
	return ExistsAs(path, TypeRegular)
}

// DirExists reports whether path names an existing directory.
func DirExists(path string) (bool, error) {
	return ExistsAs(path, TypeDirectory)
}

// SymlinkExists reports whether path names an existing symbolic link.
func SymlinkExists(path string) (bool, error) {
	return ExistsAs(path, TypeSymlink)
}

// MatchesType reports whether the object at path has the wanted type. The
// path is not followed if it is a symlink. Every stat failure, including
// nonexistence, is an error.
//
// Contrast with ExistsAs, which maps nonexistence to false.
func MatchesType(path string, want FileType) (bool, error) {
	st, err := statPath(path, false)
	if err != nil {
		return false, err
	}
	return FileType(rawMode(&st))&TypeMask == want, nil
}

// IsBlockDevice reports whether path is a block device.
func IsBlockDevice(path string) (bool, error) {
	return MatchesType(path, TypeBlockDev)
}

// IsCharDevice reports whether path is a character device.
func IsCharDevice(path string) (bool, error) {
	return MatchesType(path, TypeCharDev)
}

// IsDir reports whether path is a directory.
func IsDir(path string) (bool, error) {
	return MatchesType(path, TypeDirectory)
}

// IsFIFO reports whether path is a FIFO.
func IsFIFO(path string) (bool, error) {
	return MatchesType(path, TypeFIFO)
}

// IsPipe reports whether path is a FIFO. It is an alias of IsFIFO.
func IsPipe(path string) (bool, error) {
	return IsFIFO(path)
}

// IsSymlink reports whether path is a symbolic link.
func IsSymlink(path string) (bool, error) {
	return MatchesType(path, TypeSymlink)
}

// IsRegular reports whether path is a regular file.
func IsRegular(path string) (bool, error) {
	return MatchesType(path, TypeRegular)
}

// IsSocket reports whether path is a socket.
func IsSocket(path string) (bool, error) {
	return MatchesType(path, TypeSocket)
}

// Permissions returns the full raw mode field of the object at path,
// following symlinks. The value is not masked: it still carries the type
// bits, so callers interested only in permission semantics apply PermMask.
func Permissions(path string) (Perm, error) {
	st, err := statPath(path, true)
	if err != nil {
		return PermUnknown, err
	}
	return Perm(rawMode(&st)), nil
}

// TypeOf returns the type of the object at path, without following
// symlinks.
func TypeOf(path string) (FileType, error) {
	st, err := statPath(path, false)
	if err != nil {
		return 0, err
	}
	return FileType(rawMode(&st)) & TypeMask, nil
}
