// Package memstat samples the resident memory of the current process.
package memstat

// Sample is a resident-set reading in bytes.
type Sample struct {
	RSS int64
}

// Now returns the current resident-set size. On platforms without a
// current-RSS source the reading falls back to peak RSS or to the Go
// runtime's view of memory obtained from the OS.
func Now() Sample {
	return Sample{RSS: residentBytes()}
}

// DeltaKB returns (after - before) in KiB, truncated toward zero.
func DeltaKB(before, after Sample) int64 {
	return (after.RSS - before.RSS) / 1024
}
