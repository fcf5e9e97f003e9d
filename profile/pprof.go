//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Tag is the build tag that enables this package, also used as the default
// profile output subdirectory name.
const Tag = "pprof"

// Modes returns the sorted list of supported profiling modes.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// ignore is the no-op stopper returned for unrecognized modes.
type ignore struct{}

func (ignore) Stop() {}

// Start begins profiling in the named mode, writing output under path.
// The returned Stop must be called before process exit to flush profiles.
// An unrecognized mode is a no-op.
func Start(name, path string) interface{ Stop() } {
	fn, ok := mode[name]
	if !ok {
		return ignore{}
	}

	return profile.Start(fn, profile.ProfilePath(path), profile.Quiet)
}
