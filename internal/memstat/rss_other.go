//go:build !linux && !darwin

package memstat

import "runtime"

func residentBytes() int64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return int64(ms.Sys)
}
