//go:build unix

package scan

import (
	"os"
	"syscall"
)

// fileOwner extracts the owning uid/gid from a stat result.
func fileOwner(info os.FileInfo) (int, int) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0
	}
	return int(st.Uid), int(st.Gid)
}
