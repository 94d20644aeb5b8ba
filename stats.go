package blockpool

// Stats holds, for each space, a count of live runs indexed by
// (run length - 1), i.e. Stats.Small[0] is the number of length-1 runs
// in the SMALL space.
type Stats struct {
	Small [8]int64
	Big   [8]int64
}

// StatsGet scans both spaces' maps and returns the run-length
// distribution. It mirrors Free's run-detection walk across every word
// instead of just one, so it surfaces the same MAPCORRUPT on an invalid
// encoding.
func (ctx *Context) StatsGet() (Stats, error) {
	ctx.assertOpen()
	var st Stats
	if code := ctx.small.stats(&st.Small); code != OK {
		ctx.lastErr = code
		return Stats{}, code
	}
	if code := ctx.big.stats(&st.Big); code != OK {
		ctx.lastErr = code
		return Stats{}, code
	}
	ctx.lastErr = OK
	return st, nil
}
