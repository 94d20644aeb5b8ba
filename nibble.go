package blockpool

// Each map word is 32 bits, eight nibbles numbered left to right from 0
// (most significant nibble) to 7 (least significant). Nibble values:
const (
	nibFree = 0x0 // unit is free
	nibEnd  = 0x1 // rightmost unit of a live run
	nibCont = 0xF // non-terminal unit of a run of length >= 2
)

// nibblesPerWord is the number of units a single map word describes.
const nibblesPerWord = 8

// nibbleMask returns the 4-bit mask isolating nibble i (0..7) of a word.
func nibbleMask(i int) uint32 {
	return uint32(0xF) << uint(4*(nibblesPerWord-1-i))
}

// nibbleAt reads nibble i (0..7) out of word.
func nibbleAt(word uint32, i int) uint32 {
	return (word & nibbleMask(i)) >> uint(4*(nibblesPerWord-1-i))
}

// allocMask builds the slot-0-aligned allocation pattern for a run of k
// units (1 <= k <= 8): (k-1) continuation nibbles (0xF) followed by one
// end-marker nibble (0x1). This mirrors the slide-shift construction in
// the original C allocator: start with the end-marker in nibble 0, then
// k-1 times shift the mask right by one nibble and OR a continuation
// nibble into nibble 0.
//
//	k=1: 0x10000000
//	k=2: 0xF1000000
//	k=8: 0xFFFFFFF1
func allocMask(k int) uint32 {
	mask := uint32(nibEnd) << uint(4*(nibblesPerWord-1))
	for i := 1; i < k; i++ {
		mask >>= 4
		mask |= uint32(nibCont) << uint(4*(nibblesPerWord-1))
	}
	return mask
}

// scanWord looks for the left-most slot in word, among slots
// 0..nibblesPerWord-k, that a run of k units could occupy without
// disturbing an already-occupied nibble. Equivalent to sliding the
// allocation mask across the word nibble by nibble, just enumerated candidate
// slot by candidate slot, which is easier to verify by inspection.
func scanWord(word uint32, k int) (slot int, mask uint32, ok bool) {
	full := allocMask(k)
	for slot := 0; slot <= nibblesPerWord-k; slot++ {
		candidate := full >> uint(4*slot)
		if word&candidate == 0 {
			return slot, candidate, true
		}
	}
	return 0, 0, false
}

// runLength walks nibbles starting at slot within word until it finds
// the end-marker, returning the slot it terminates at. It reports
// corruption if an interior nibble isn't a continuation marker, or
// if the walk runs off the word without ever finding an end-marker.
func runLength(word uint32, startSlot int) (endSlot int, ok bool) {
	for slot := startSlot; slot < nibblesPerWord; slot++ {
		v := nibbleAt(word, slot)
		if v == nibEnd {
			return slot, true
		}
		if v != nibCont {
			return 0, false
		}
	}
	return 0, false
}

// clearMask ORs together the nibble masks from startSlot to endSlot
// inclusive, for use in clearing a freed run from a map word.
func clearMask(startSlot, endSlot int) uint32 {
	var m uint32
	for i := startSlot; i <= endSlot; i++ {
		m |= nibbleMask(i)
	}
	return m
}
