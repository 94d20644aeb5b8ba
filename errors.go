package blockpool

import "fmt"

// ErrCode is the sticky error code surfaced by mutating operations.
// Ordinals are part of the public contract and must stay stable.
type ErrCode int

const (
	// OK means the last mutating operation succeeded.
	OK ErrCode = iota
	// NOMEM means the allocation scan found no fitting slot in the
	// sized space.
	NOMEM
	// TOOBIG means the request exceeds the largest space's word
	// coverage.
	TOOBIG
	// UNKNOWNPOINTER means Free was called with a Ptr outside both
	// payload regions.
	UNKNOWNPOINTER
	// MAPCORRUPT means a nibble walk encountered an invalid encoding
	// or ran off the end of a map word.
	MAPCORRUPT
	// errLast is the count sentinel, not a valid error code itself.
	errLast
)

var errStrings = [...]string{
	OK:             "OK",
	NOMEM:          "No available memory for last allocation",
	TOOBIG:         "Requested memory allocation to big for memory spaces",
	UNKNOWNPOINTER: "Referenced memory not in mblib space",
	MAPCORRUPT:     "Map space is corrupted",
}

// ErrStr looks up the positional error string for code. The second
// return is false if code is out of range, mirroring mberrstr()'s NULL
// return for an unrecognised code.
func ErrStr(code ErrCode) (string, bool) {
	if code < OK || code >= errLast {
		return "", false
	}
	return errStrings[code], true
}

// Error implements the error interface so an ErrCode can be returned
// and compared directly (errors.Is-style) by callers that prefer
// idiomatic Go error handling over polling Err().
func (code ErrCode) Error() string {
	if s, ok := ErrStr(code); ok {
		return s
	}
	return fmt.Sprintf("blockpool: unknown error code %d", int(code))
}
