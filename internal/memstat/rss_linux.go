//go:build linux

package memstat

import (
	"bytes"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// residentBytes reads the resident page count from /proc/self/statm.
func residentBytes() int64 {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return peakBytes()
	}
	f := bytes.Fields(data)
	if len(f) < 2 {
		return peakBytes()
	}
	pages, err := strconv.ParseInt(string(f[1]), 10, 64)
	if err != nil {
		return peakBytes()
	}
	return pages * int64(unix.Getpagesize())
}

// peakBytes is the max RSS; Linux reports ru_maxrss in KiB.
func peakBytes() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return int64(ru.Maxrss) * 1024
}
