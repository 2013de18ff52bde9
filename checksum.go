package fdkit

import "github.com/cespare/xxhash/v2"

// checksumBufSize is the read granularity for digests. 64 KiB keeps the
// syscall count low without a large allocation.
const checksumBufSize = 64 * 1024

// Checksum computes the xxHash64 digest of the file's content, reading it
// through the facade's own handle operations.
func Checksum(path string) (uint64, error) {
	h, err := Open(path, ReadOnly)
	if err != nil {
		return 0, err
	}
	defer h.Close()

	d := xxhash.New()
	buf := make([]byte, checksumBufSize)
	for {
		n, err := h.Read(buf)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			break
		}
		d.Write(buf[:n]) // never fails
	}
	return d.Sum64(), nil
}

// Identical reports whether the files at a and b have the same content, by
// comparing their checksums.
func Identical(a, b string) (bool, error) {
	ca, err := Checksum(a)
	if err != nil {
		return false, err
	}
	cb, err := Checksum(b)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}
