package blockpool

import "encoding/binary"

// space is one of the two independently-managed arenas (SMALL or BIG).
// Its map and payload are both sub-slices of the Context's single host
// buffer; payloadBase is the payload's absolute byte offset within that
// buffer, which is what a Ptr is measured against.
type space struct {
	unitSize     int
	wordCoverage int // 8 * unitSize
	mapWords     int
	cursor       int // rotating index into mapBuf, advisory

	mapBuf      []byte // mapWords*4 bytes
	payload     []byte // mapWords*wordCoverage bytes
	payloadBase int64
}

func newSpace(unitSize, units int, mapBuf, payload []byte, payloadBase int64) *space {
	return &space{
		unitSize:     unitSize,
		wordCoverage: unitSize * nibblesPerWord,
		mapWords:     units / nibblesPerWord,
		mapBuf:       mapBuf,
		payload:      payload,
		payloadBase:  payloadBase,
	}
}

func (sp *space) getWord(mi int) uint32 {
	return binary.BigEndian.Uint32(sp.mapBuf[mi*4 : mi*4+4])
}

func (sp *space) setWord(mi int, w uint32) {
	binary.BigEndian.PutUint32(sp.mapBuf[mi*4:mi*4+4], w)
}

func (sp *space) nextIndex(mi int) int {
	mi++
	if mi >= sp.mapWords {
		return 0
	}
	return mi
}

// alloc scans at most once around the map, starting at the rotating
// cursor, for a word with room for a run of k units. On success it
// stamps the run into the map and repositions the cursor: if the word's
// rightmost nibble is now occupied, the cursor moves past it so the next
// scan doesn't re-examine a full word.
func (sp *space) alloc(k int) (mi, slot int, ok bool) {
	start := sp.cursor
	mi = start
	for {
		word := sp.getWord(mi)
		if s, mask, found := scanWord(word, k); found {
			word |= mask
			sp.setWord(mi, word)
			sp.cursor = mi
			if nibbleAt(word, nibblesPerWord-1) != nibFree {
				sp.cursor = sp.nextIndex(mi)
			}
			return mi, s, true
		}
		mi = sp.nextIndex(mi)
		if mi == start {
			return 0, 0, false
		}
	}
}

// free clears the run starting at (mi, slot), recovering its length by
// reading the map alone. It reports MAPCORRUPT if the nibble walk never
// finds an end-marker before running off the word — this is also how a
// double-free is caught: the second call reads a free (0x0) nibble at
// the start slot, which is neither an end-marker nor a continuation.
func (sp *space) free(mi, slot int) (runLen int, code ErrCode) {
	word := sp.getWord(mi)
	end, ok := runLength(word, slot)
	if !ok {
		return 0, MAPCORRUPT
	}
	word &^= clearMask(slot, end)
	sp.setWord(mi, word)
	return end - slot + 1, OK
}

// contains reports whether offset falls inside this space's payload
// region.
func (sp *space) contains(offset int64) bool {
	return offset >= sp.payloadBase &&
		offset < sp.payloadBase+int64(len(sp.payload))
}

// slotOf recovers the (map word, nibble slot) a payload offset starts
// at. Callers must only pass offsets for which contains() is true.
func (sp *space) slotOf(offset int64) (mi, slot int) {
	rel := offset - sp.payloadBase
	mi = int(rel / int64(sp.wordCoverage))
	within := rel % int64(sp.wordCoverage)
	slot = int(within) / sp.unitSize
	return mi, slot
}

// addrOf computes the payload offset for a (map word, nibble slot) pair.
func (sp *space) addrOf(mi, slot int) int64 {
	return sp.payloadBase + int64(mi)*int64(sp.wordCoverage) + int64(slot)*int64(sp.unitSize)
}

// scanWordRuns walks every run in word, incrementing counts[length-1]
// for each, mirroring free's run-detection but across the whole word:
// find a non-zero nibble, walk to its end-marker, record the length,
// resume past it.
func scanWordRuns(word uint32, counts *[8]int64) ErrCode {
	slot := 0
	for slot < nibblesPerWord {
		if nibbleAt(word, slot) == nibFree {
			slot++
			continue
		}
		end, ok := runLength(word, slot)
		if !ok {
			return MAPCORRUPT
		}
		counts[end-slot]++
		slot = end + 1
	}
	return OK
}

// allFree reports whether every word in the space's map is zero.
func (sp *space) allFree() bool {
	for mi := 0; mi < sp.mapWords; mi++ {
		if sp.getWord(mi) != 0 {
			return false
		}
	}
	return true
}

// stats populates counts[i] with the number of live runs of length i+1
// across the whole space.
func (sp *space) stats(counts *[8]int64) ErrCode {
	for mi := 0; mi < sp.mapWords; mi++ {
		if code := scanWordRuns(sp.getWord(mi), counts); code != OK {
			return code
		}
	}
	return OK
}
