// Package blockpool implements a fixed-arena, two-class block allocator
// for long-running processes that must allocate and free small objects
// forever without invoking the Go allocator past Init.
//
// Two independent spaces, SMALL (16 byte units) and BIG (256 byte units),
// are carved once out of a single contiguous buffer acquired at Init.
// Each space tracks occupancy with a map of 32-bit words, four bits per
// unit: a free unit is 0x0, the last unit of a live run is 0x1, and every
// other unit of a run in progress is 0xF. Runs never cross a map-word
// boundary, so Free recovers a run's length by reading the map alone —
// there is no per-allocation header.
//
// Functions and methods on Context are not safe for concurrent use;
// callers that share a Context across goroutines must serialize access
// themselves.
package blockpool
