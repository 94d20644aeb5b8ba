package blockpool

import s "github.com/bnclabs/gosettings"

// Context holds the allocator's full state: two independent size-class
// spaces plus the last sticky error. It is not safe for concurrent use —
// callers must serialize their own access.
type Context struct {
	small *space
	big   *space

	buf     []byte
	lastErr ErrCode
	logger  Logger
	closed  bool
}

func settingsInt64(st s.Settings, key string, def int64) int64 {
	v, ok := st[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return def
}

func settingsBool(st s.Settings, key string, def bool) bool {
	v, ok := st[key]
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// New builds a Context from settings (see DefaultSettings), acquiring one
// contiguous host buffer sized as:
//
//	small_words*(4+128) + big_words*(4+2048)
//
// and partitioning it as SMALL.map | SMALL.payload | BIG.map |
// BIG.payload. The buffer is zeroed by make, so the whole region starts
// out free without a separate pass. A non-positive "smallkilo" or
// "bigkilo" is a programmer error and panics rather than returning an
// error (see kiloToUnits).
func New(settings s.Settings) (*Context, error) {
	smallUnits := kiloToUnits("smallkilo", settingsInt64(settings, "smallkilo", 0))
	bigUnits := kiloToUnits("bigkilo", settingsInt64(settings, "bigkilo", 0))

	smallWords := smallUnits / nibblesPerWord
	bigWords := bigUnits / nibblesPerWord

	smallMapBytes := smallWords * 4
	smallPayloadBytes := smallWords * smallWordCoverage
	bigMapBytes := bigWords * 4
	bigPayloadBytes := bigWords * bigWordCoverage

	total := int64(smallMapBytes) + int64(smallPayloadBytes) +
		int64(bigMapBytes) + int64(bigPayloadBytes)

	logger := defaultLogger
	if settingsBool(settings, "freemem.guard", true) {
		checkFreeMem(logger, total)
	}

	buf := make([]byte, total)

	off := 0
	smallMap := buf[off : off+smallMapBytes]
	off += smallMapBytes
	smallPayload := buf[off : off+smallPayloadBytes]
	smallPayloadBase := int64(off)
	off += smallPayloadBytes
	bigMap := buf[off : off+bigMapBytes]
	off += bigMapBytes
	bigPayload := buf[off : off+bigPayloadBytes]
	bigPayloadBase := int64(off)

	ctx := &Context{
		small:  newSpace(smallUnitSize, smallUnits, smallMap, smallPayload, smallPayloadBase),
		big:    newSpace(bigUnitSize, bigUnits, bigMap, bigPayload, bigPayloadBase),
		buf:    buf,
		logger: logger,
	}
	logger.Infof(
		"blockpool: init small=%d units (%d words) big=%d units (%d words), %d bytes total",
		smallUnits, smallWords, bigUnits, bigWords, total,
	)
	return ctx, nil
}

func (ctx *Context) assertOpen() {
	if ctx.closed {
		panic("blockpool: use of Context after Term")
	}
}

// spaceFor picks the first space (SMALL then BIG) whose word coverage
// can hold n bytes.
func (ctx *Context) spaceFor(n int) *space {
	if n <= 0 {
		return nil
	}
	if n <= ctx.small.wordCoverage {
		return ctx.small
	}
	if n <= ctx.big.wordCoverage {
		return ctx.big
	}
	return nil
}

// unitsFor computes k = ceil(n/unitSize), clamped to [1, 8].
func unitsFor(n, unitSize int) int {
	k := (n + unitSize - 1) / unitSize
	if k < 1 {
		k = 1
	}
	if k > nibblesPerWord {
		k = nibblesPerWord
	}
	return k
}

// Alloc allocates n bytes, returning the handle and a view of the
// backing bytes. n==0 is rejected with TOOBIG rather than stamping a
// zero-unit "allocation".
func (ctx *Context) Alloc(n int) (Ptr, []byte, error) {
	ctx.assertOpen()
	if n <= 0 || n > maxAllocSize {
		ctx.lastErr = TOOBIG
		return NullPtr, nil, TOOBIG
	}

	sp := ctx.spaceFor(n)
	if sp == nil {
		ctx.lastErr = TOOBIG
		return NullPtr, nil, TOOBIG
	}

	k := unitsFor(n, sp.unitSize)
	mi, slot, ok := sp.alloc(k)
	if !ok {
		ctx.lastErr = NOMEM
		ctx.logger.Debugf("blockpool: NOMEM allocating %d bytes (k=%d units)", n, k)
		return NullPtr, nil, NOMEM
	}

	ctx.lastErr = OK
	addr := sp.addrOf(mi, slot)
	runLen := k * sp.unitSize
	return Ptr(addr), ctx.buf[addr : addr+int64(runLen)], nil
}

// Free releases the run starting at p. p must have been returned by a
// prior Alloc and not yet freed; freeing it twice deterministically
// yields MAPCORRUPT (see space.free).
func (ctx *Context) Free(p Ptr) error {
	ctx.assertOpen()
	offset := int64(p)

	var sp *space
	switch {
	case ctx.small.contains(offset):
		sp = ctx.small
	case ctx.big.contains(offset):
		sp = ctx.big
	default:
		ctx.lastErr = UNKNOWNPOINTER
		return UNKNOWNPOINTER
	}

	mi, slot := sp.slotOf(offset)
	if _, code := sp.free(mi, slot); code != OK {
		ctx.lastErr = code
		ctx.logger.Errorf("blockpool: MAPCORRUPT freeing offset %d (word %d slot %d)", offset, mi, slot)
		return code
	}
	ctx.lastErr = OK
	return nil
}

// Err returns the error code set by the last mutating operation. Reading
// it is non-destructive.
func (ctx *Context) Err() ErrCode {
	ctx.assertOpen()
	return ctx.lastErr
}

// TestFree reports whether every map word in both spaces is zero.
func (ctx *Context) TestFree() bool {
	ctx.assertOpen()
	return ctx.small.allFree() && ctx.big.allFree()
}

// Term releases the Context's resources. After Term no operation is
// defined; this implementation turns that into a deterministic panic
// rather than leaving it undefined.
func (ctx *Context) Term() error {
	ctx.assertOpen()
	ctx.closed = true
	ctx.buf = nil
	ctx.small = nil
	ctx.big = nil
	return nil
}
