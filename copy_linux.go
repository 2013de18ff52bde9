//go:build linux

package fdkit

import "golang.org/x/sys/unix"

// transferChunk moves up to max bytes from src to dst without staging them
// through user space. The kernel may transfer less than requested; Copy's
// completion loop handles the remainder.
func transferChunk(src, dst Handle, max int) (int, error) {
	n, err := unix.CopyFileRange(int(src), nil, int(dst), nil, max, 0)
	if err != nil {
		return 0, &OpError{Op: "copy_file_range", Err: err}
	}
	return n, nil
}
