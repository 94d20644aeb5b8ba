package blockpool

import "io"

// defaultCtx backs the package-level singleton surface: a process-wide
// control block for callers that only ever need one arena per process.
// Prefer New/Context for new code.
var defaultCtx *Context

// Init is the one-shot singleton setup: kSmallKilo and kBigKilo are each
// multiplied by 1024 to give the unit count for the SMALL and BIG spaces
// respectively. Repeated Init without an intervening Term has undefined
// behavior.
func Init(kSmallKilo, kBigKilo int64) error {
	ctx, err := New(DefaultSettings(kSmallKilo, kBigKilo))
	if err != nil {
		return err
	}
	defaultCtx = ctx
	return nil
}

// singleton panics with a clear message instead of letting a nil
// defaultCtx fail with a bare nil-pointer dereference when a
// package-level call is made before Init or after Term.
func singleton() *Context {
	if defaultCtx == nil {
		panic("blockpool: package-level call before Init or after Term")
	}
	return defaultCtx
}

// Alloc allocates from the default Context created by Init.
func Alloc(n int) (Ptr, []byte, error) {
	return singleton().Alloc(n)
}

// Free releases p back to the default Context.
func Free(p Ptr) error {
	return singleton().Free(p)
}

// Err returns the default Context's last sticky error code.
func Err() ErrCode {
	return singleton().Err()
}

// StatsGet returns the default Context's run-length distribution.
func StatsGet() (Stats, error) {
	return singleton().StatsGet()
}

// DumpStat prints the default Context's allocation statistics to w (or
// os.Stdout if w is nil).
func DumpStat(w io.Writer) {
	singleton().DumpStat(w)
}

// DumpMap prints the default Context's maps to w (or os.Stdout if w is
// nil).
func DumpMap(w io.Writer) {
	singleton().DumpMap(w)
}

// TestFree reports whether the default Context is entirely free.
func TestFree() bool {
	return singleton().TestFree()
}

// Term releases the default Context. After Term, no package-level
// operation is defined until the next Init.
func Term() error {
	err := singleton().Term()
	defaultCtx = nil
	return err
}
