package fdkit

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Common facade errors
var (
	// ErrNotSet indicates an environment variable lookup found no value.
	ErrNotSet = errors.New("environment variable not set")

	// ErrVerifyFailed indicates a verified copy produced a destination
	// whose checksum differs from the source.
	ErrVerifyFailed = errors.New("copy verification failed: checksum mismatch")
)

// OpError records a failed operation, the path it was given and the error
// the operating system returned. For OS calls Err is the syscall.Errno the
// call itself returned; the error is built at the call site, never read
// back from process-global state.
type OpError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *OpError) Unwrap() error {
	return e.Err
}

// Errno returns the OS error code carried by the error, if any.
func (e *OpError) Errno() (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno, true
	}
	return 0, false
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsExist reports whether an error indicates that a file or directory
// already exists
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
