package fdkit

import (
	"io"

	"golang.org/x/sys/unix"
)

// Copy copies the file at src to dst using the platform's bulk-transfer
// primitive, looping until the source size determined up front has been
// transferred. An existing destination is overwritten. The destination is
// created with the source's permission bits.
//
// Defaults for the transfer chunk size and post-copy verification come
// from the environment (see Config) and can be overridden per call with
// CopyOption values.
func Copy(src, dst string, opts ...CopyOption) error {
	o := copyDefaults()
	for _, opt := range opts {
		opt(&o)
	}

	in, err := Open(src, ReadOnly)
	if err != nil {
		return err
	}
	defer in.Close()

	var st unix.Stat_t
	if err := unix.Fstat(int(in), &st); err != nil {
		return &OpError{Op: "fstat", Path: src, Err: err}
	}

	out, err := OpenFile(dst, WriteOnly|Create|Truncate, Perm(rawMode(&st))&PermMask)
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			out.Close()
		}
	}()

	remaining := st.Size
	for remaining > 0 {
		req := o.ChunkSize
		if int64(req) > remaining {
			req = int(remaining)
		}
		n, err := transferChunk(in, out, req)
		if err != nil {
			return err
		}
		if n == 0 {
			// The source shrank under us; better to fail than spin.
			return &OpError{Op: "copy", Path: src, Err: io.ErrUnexpectedEOF}
		}
		remaining -= int64(n)
	}

	closed = true
	if err := out.Close(); err != nil {
		return err
	}

	if o.Verify {
		same, err := Identical(src, dst)
		if err != nil {
			return err
		}
		if !same {
			return &OpError{Op: "copy", Path: dst, Err: ErrVerifyFailed}
		}
	}
	return nil
}

// Symlink creates a symbolic link at link pointing to target.
func Symlink(target, link string) error {
	if err := unix.Symlink(target, link); err != nil {
		return &OpError{Op: "symlink", Path: link, Err: err}
	}
	return nil
}

// Link creates a hard link at newPath referring to the object at oldPath.
func Link(oldPath, newPath string) error {
	if err := unix.Link(oldPath, newPath); err != nil {
		return &OpError{Op: "link", Path: newPath, Err: err}
	}
	return nil
}

// Remove deletes the file at path.
func Remove(path string) error {
	if err := unix.Unlink(path); err != nil {
		return &OpError{Op: "unlink", Path: path, Err: err}
	}
	return nil
}

// RemoveDir deletes the directory at path. It fails if the directory is
// missing or not empty.
func RemoveDir(path string) error {
	if err := unix.Rmdir(path); err != nil {
		return &OpError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}

// Mkdir creates a directory at path with the given permission bits.
func Mkdir(path string, perm Perm) error {
	if err := unix.Mkdir(path, uint32(perm)); err != nil {
		return &OpError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// Rename changes the name or location of a file or directory, with the
// atomic-replace semantics the OS provides on a single filesystem.
func Rename(oldPath, newPath string) error {
	if err := unix.Rename(oldPath, newPath); err != nil {
		return &OpError{Op: "rename", Path: oldPath, Err: err}
	}
	return nil
}
