//go:build linux

package fdkit

import "golang.org/x/sys/unix"

// rawMode returns the raw mode field of a stat result. Linux already
// carries it as uint32.
func rawMode(st *unix.Stat_t) uint32 {
	return st.Mode
}
