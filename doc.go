// Package fdkit is a thin facade over the operating system's file and path
// calls: open and close a handle, read and write bytes, query metadata,
// create and remove files, directories and links, and read environment
// variables.
//
// The package exists so calling code never touches raw numeric error codes
// or loosely-typed bit flags. Every operation that talks to the OS converts
// a failure into an [*OpError] carrying the failed call's name, the path it
// was given and the error the kernel returned, and every bit-flag input is
// exposed as named, typed constants ([OpenMode], [Perm], [FileType]) sourced
// from the host platform rather than hard-coded literals.
//
// # Handles
//
// [Open] and [OpenFile] return a [Handle], an opaque file descriptor. The
// facade does not track open handles: a handle must be released with
// [Handle.Close], and using it after release (or releasing it twice) is
// reported only to the extent the OS call itself fails.
//
//	h, err := fdkit.OpenFile("out.txt", fdkit.WriteOnly|fdkit.Create, fdkit.OwnerRead|fdkit.OwnerWrite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//
//	n, err := h.Write([]byte("hello"))
//
// Reads and writes follow the kernel's partial-completion contract: a short
// read or write is a valid result, and a zero-byte read signals end of
// stream. Only the syscall's own error return becomes an error; callers
// needing "exactly N bytes" loop themselves.
//
// # Existence vs. type matching
//
// Two predicate families with deliberately different failure policies are
// provided. The [ExistsAs] family ([FileExists], [DirExists],
// [SymlinkExists]) answers "is there such an object" and maps a missing
// path to false. The [MatchesType] family ([IsRegular], [IsDir],
// [IsSymlink], ...) answers "what is this object" and reports a missing
// path as an error like any other stat failure.
//
// # Error Handling
//
// All failures unwrap to the underlying [syscall.Errno], so they work with
// errors.Is against the io/fs sentinels:
//
//	if _, err := fdkit.FileSize("gone.txt"); fdkit.IsNotExist(err) {
//	    // handle missing file
//	}
//
// # Configuration
//
// [Copy] defaults (transfer chunk size, post-copy verification) can be set
// through the environment with the FDKIT_ prefix, or per call with
// [CopyOption] values.
package fdkit
