package fdkit

import "testing"

func TestPermValidity(t *testing.T) {
	tests := []struct {
		name string
		perm Perm
		want bool
	}{
		{"none", PermNone, true},
		{"owner rw", OwnerRead | OwnerWrite, true},
		{"all with special bits", AllPerm | SetUID | SetGID | Sticky, true},
		{"mask itself", PermMask, true},
		{"unknown sentinel", PermUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.perm.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPermMaskCoversClassTriples(t *testing.T) {
	classes := OwnerAll | GroupAll | OtherAll
	if classes&PermMask != classes {
		t.Error("PermMask does not cover owner/group/other rwx")
	}
	special := SetUID | SetGID | Sticky
	if special&PermMask != special {
		t.Error("PermMask does not cover set-uid/set-gid/sticky")
	}
	if AllPerm != classes {
		t.Error("AllPerm differs from owner|group|other rwx")
	}
}

func TestFileTypeString(t *testing.T) {
	tests := []struct {
		typ  FileType
		want string
	}{
		{TypeRegular, "regular file"},
		{TypeDirectory, "directory"},
		{TypeSymlink, "symlink"},
		{TypeBlockDev, "block device"},
		{TypeCharDev, "character device"},
		{TypeFIFO, "fifo"},
		{TypeSocket, "socket"},
		{FileType(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("FileType(%#x).String() = %q, want %q", uint32(tt.typ), got, tt.want)
		}
	}
}

func TestOpenModesCombine(t *testing.T) {
	mode := WriteOnly | Create | Truncate
	if mode&Create == 0 {
		t.Error("combined mode lost the create bit")
	}
	if mode&Truncate == 0 {
		t.Error("combined mode lost the truncate bit")
	}
}
