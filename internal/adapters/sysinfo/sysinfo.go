// Package sysinfo reports the portable subset of hardware/runtime
// information original_source's system_info.cpp gathers via OS-specific
// syscalls (CPU model, cache sizes, clock speed). That syscall-heavy
// detection stays out of scope here; this package keeps only what runtime
// exposes portably across GOOS/GOARCH.
package sysinfo

import "runtime"

// Info is the subset of original_source's SystemInfo struct this package
// can populate without OS-specific code: no CPU model string, no cache
// sizes, no RAM totals.
type Info struct {
	LogicalCPUs  int
	GOOS         string
	GOARCH       string
	NumGoroutine int
	GoVersion    string
}

// Detect gathers the portable fields, the Go analogue of
// SystemInfoDetector::detect().
func Detect() Info {
	return Info{
		LogicalCPUs:  runtime.NumCPU(),
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		NumGoroutine: runtime.NumGoroutine(),
		GoVersion:    runtime.Version(),
	}
}
