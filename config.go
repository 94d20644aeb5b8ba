package blockpool

import (
	"fmt"

	s "github.com/bnclabs/gosettings"
	"github.com/cloudfoundry/gosigar"
)

// unitSize and wordCoverage are fixed: SMALL and BIG are the only two
// size-class families this allocator supports, each sized from a single
// map word's 8-nibble span.
const (
	smallUnitSize = 16
	bigUnitSize   = 256

	smallWordCoverage = smallUnitSize * nibblesPerWord // 128
	bigWordCoverage   = bigUnitSize * nibblesPerWord   // 2048

	// maxAllocSize is the largest request Alloc will ever satisfy.
	maxAllocSize = bigWordCoverage

	// freememFraction is the advisory ceiling: Init logs a warning (it
	// does not fail) if the requested capacity exceeds this fraction of
	// the host's actual free memory at the moment of the call.
	freememFraction = 0.5
)

// DefaultSettings returns the configuration New expects, following the
// documented-settings-map idiom: each key lists its type, default, and
// meaning.
//
// "smallkilo" (int64, required)
//
//	Number of 1024-unit groups of 16-byte units to reserve for the
//	SMALL space. The space holds smallkilo*1024 units.
//
// "bigkilo" (int64, required)
//
//	Number of 1024-unit groups of 256-byte units to reserve for the
//	BIG space. The space holds bigkilo*1024 units.
//
// "freemem.guard" (bool, default: true)
//
//	When true, New logs a warning (via the active Logger) if the
//	arena's total byte capacity exceeds freememFraction of the host's
//	actual free memory, as reported by gosigar. This is advisory only;
//	New never fails because of it.
func DefaultSettings(smallKilo, bigKilo int64) s.Settings {
	return s.Settings{
		"smallkilo":     smallKilo,
		"bigkilo":       bigKilo,
		"freemem.guard": true,
	}
}

// kiloToUnits converts a "kilo" setting (e.g. "smallkilo") into a unit
// count. A non-positive kilo count is a programmer error in the caller's
// configuration, not a runtime condition New's caller should have to
// handle, so it panics rather than threading an error back through New.
func kiloToUnits(name string, kilo int64) int {
	if kilo <= 0 {
		panic(fmt.Errorf("blockpool: %q must be a positive kilo-unit count, got %d", name, kilo))
	}
	return int(kilo * 1024)
}

// checkFreeMem is the gosigar-backed advisory check described by
// "freemem.guard" above. Failure to read host memory stats (common in
// containers/sandboxes with restricted /proc access) is itself
// advisory: it is logged at Debug and otherwise ignored.
func checkFreeMem(logger Logger, capacity int64) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		logger.Debugf("blockpool: could not read host memory stats: %v", err)
		return
	}
	if float64(capacity) > float64(mem.ActualFree)*freememFraction {
		logger.Warnf(
			"blockpool: arena capacity %d bytes exceeds %.0f%% of actual free memory (%d bytes)",
			capacity, freememFraction*100, mem.ActualFree,
		)
	}
}
