package fdkit

// CopyOption adjusts a single Copy call.
type CopyOption func(*CopyOptions)

// CopyOptions contains all possible options for copy operations
type CopyOptions struct {
	// ChunkSize caps the number of bytes requested from the bulk-transfer
	// primitive per loop iteration.
	ChunkSize int

	// Verify re-reads both files after the transfer and compares their
	// checksums.
	Verify bool
}

// WithChunkSize caps the per-iteration transfer length. Values below one
// are ignored.
func WithChunkSize(n int) CopyOption {
	return func(o *CopyOptions) {
		if n > 0 {
			o.ChunkSize = n
		}
	}
}

// WithVerify enables or disables post-copy checksum verification.
func WithVerify(v bool) CopyOption {
	return func(o *CopyOptions) {
		o.Verify = v
	}
}
