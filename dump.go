package blockpool

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// DumpMap prints each space's map words as 8 uppercase hex digits,
// wrapping every 8 words, preceded by the space's header. Format is not
// contractual — consumers should not parse it. w defaults to os.Stdout
// when nil.
func (ctx *Context) DumpMap(w io.Writer) {
	ctx.assertOpen()
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, "-------- Small Block Map --------\n")
	dumpSpaceMap(w, ctx.small)
	fmt.Fprint(w, "-------- Big Block Map --------\n")
	dumpSpaceMap(w, ctx.big)
}

func dumpSpaceMap(w io.Writer, sp *space) {
	for mi := 0; mi < sp.mapWords; mi++ {
		fmt.Fprintf(w, "%08X ", sp.getWord(mi))
		if (mi+1)%8 == 0 {
			fmt.Fprintln(w)
		}
	}
	if sp.mapWords%8 != 0 {
		fmt.Fprintln(w)
	}
}

// DumpStat prints the run-length distribution for both spaces, each as
// 8 six-digit zero-padded counters, then an additional humanized
// total-bytes-in-use line (non-contractual, purely diagnostic). w
// defaults to os.Stdout when nil.
func (ctx *Context) DumpStat(w io.Writer) {
	ctx.assertOpen()
	if w == nil {
		w = os.Stdout
	}
	st, err := ctx.StatsGet()
	fmt.Fprint(w, "\n---- Block Allocation Statistics ----\n")
	if err != nil {
		fmt.Fprintf(w, "stats unavailable: %v\n", err)
		return
	}

	fmt.Fprint(w, "-- small blocks : ")
	var smallBytes, bigBytes int64
	for i, n := range st.Small {
		fmt.Fprintf(w, "%06d ", n)
		smallBytes += n * int64(i+1) * smallUnitSize
	}
	fmt.Fprint(w, "\n--   big blocks : ")
	for i, n := range st.Big {
		fmt.Fprintf(w, "%06d ", n)
		bigBytes += n * int64(i+1) * bigUnitSize
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "-- in use : %s\n", humanize.Bytes(uint64(smallBytes+bigBytes)))
}
