//go:build darwin

package fdkit

import "golang.org/x/sys/unix"

// transferChunk moves up to max bytes from src to dst. Darwin has no
// copy_file_range, so the chunk is staged through a user-space buffer; the
// write is completed in full so the caller's remaining count stays honest.
func transferChunk(src, dst Handle, max int) (int, error) {
	buf := make([]byte, max)
	n, err := unix.Read(int(src), buf)
	if err != nil {
		return 0, &OpError{Op: "read", Err: err}
	}
	if n == 0 {
		return 0, nil
	}
	for off := 0; off < n; {
		w, err := unix.Write(int(dst), buf[off:n])
		if err != nil {
			return 0, &OpError{Op: "write", Err: err}
		}
		off += w
	}
	return n, nil
}
