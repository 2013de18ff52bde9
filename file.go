package fdkit

import "golang.org/x/sys/unix"

// Handle is an opaque reference to an OS-level open file. The facade does
// not track handles: the caller owns the handle and must release it with
// Close exactly once.
type Handle int

// Open opens the file at path with the given mode and returns a handle to
// it. When mode includes Create the OS requires permission bits for the new
// file; use OpenFile for that.
func Open(path string, mode OpenMode) (Handle, error) {
	fd, err := unix.Open(path, int(mode), 0)
	if err != nil {
		return -1, &OpError{Op: "open", Path: path, Err: err}
	}
	return Handle(fd), nil
}

// OpenFile is like Open but also supplies the permission bits applied when
// mode includes Create and the file does not yet exist.
func OpenFile(path string, mode OpenMode, perm Perm) (Handle, error) {
	fd, err := unix.Open(path, int(mode), uint32(perm))
	if err != nil {
		return -1, &OpError{Op: "open", Path: path, Err: err}
	}
	return Handle(fd), nil
}

// Close releases the handle. It fails if the OS reports the handle was
// already invalid or the release itself failed, for example a deferred
// write-back error surfacing at close time.
func (h Handle) Close() error {
	if err := unix.Close(int(h)); err != nil {
		return &OpError{Op: "close", Err: err}
	}
	return nil
}

// Read reads up to len(p) bytes into p and returns the number of bytes
// actually read. A short read is a valid result; zero bytes with a nil
// error signals end of stream. The call blocks until the OS completes it.
func (h Handle) Read(p []byte) (int, error) {
	n, err := unix.Read(int(h), p)
	if err != nil {
		return 0, &OpError{Op: "read", Err: err}
	}
	return n, nil
}

// Write writes up to len(p) bytes from p and returns the number of bytes
// actually written. A short write is a valid result; callers needing
// "exactly len(p) bytes" must loop.
func (h Handle) Write(p []byte) (int, error) {
	n, err := unix.Write(int(h), p)
	if err != nil {
		return 0, &OpError{Op: "write", Err: err}
	}
	return n, nil
}

// Size returns the current size in bytes of the open file.
func (h Handle) Size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(h), &st); err != nil {
		return 0, &OpError{Op: "fstat", Err: err}
	}
	return st.Size, nil
}
