//go:build darwin

package fdkit

import "golang.org/x/sys/unix"

// rawMode returns the raw mode field of a stat result. Darwin's Stat_t
// keeps it as uint16, so widen before masking.
func rawMode(st *unix.Stat_t) uint32 {
	return uint32(st.Mode)
}
