package blockpool

import "testing"

func newTestSpace(t *testing.T, unitSize, units int) *space {
	t.Helper()
	words := units / nibblesPerWord
	mapBuf := make([]byte, words*4)
	payload := make([]byte, words*unitSize*nibblesPerWord)
	return newSpace(unitSize, units, mapBuf, payload, 1000)
}

func TestSpaceAllocFillsWordThenAdvancesCursor(t *testing.T) {
	sp := newTestSpace(t, 16, 16) // 2 words
	for i := 0; i < 8; i++ {
		mi, slot, ok := sp.alloc(1)
		if !ok || mi != 0 || slot != i {
			t.Fatalf("alloc %d: got mi=%d slot=%d ok=%v", i, mi, slot, ok)
		}
	}
	if sp.cursor != 1 {
		t.Fatalf("expected cursor to advance to word 1 once word 0 filled, got %d", sp.cursor)
	}
	mi, slot, ok := sp.alloc(1)
	if !ok || mi != 1 || slot != 0 {
		t.Fatalf("expected next alloc in word 1 slot 0, got mi=%d slot=%d ok=%v", mi, slot, ok)
	}
}

func TestSpaceAllocExhaustion(t *testing.T) {
	sp := newTestSpace(t, 16, 8)
	for i := 0; i < 8; i++ {
		if _, _, ok := sp.alloc(1); !ok {
			t.Fatalf("alloc %d unexpectedly failed", i)
		}
	}
	if _, _, ok := sp.alloc(1); ok {
		t.Fatalf("expected exhaustion")
	}
}

func TestSpaceFreeRoundTrip(t *testing.T) {
	sp := newTestSpace(t, 16, 8)
	mi, slot, ok := sp.alloc(3)
	if !ok {
		t.Fatal("alloc failed")
	}
	runLen, code := sp.free(mi, slot)
	if code != OK {
		t.Fatalf("unexpected code %v", code)
	}
	if runLen != 3 {
		t.Fatalf("expected run length 3, got %d", runLen)
	}
	if !sp.allFree() {
		t.Fatalf("expected space fully free after single free")
	}
}

func TestSpaceDoubleFreeCorrupts(t *testing.T) {
	sp := newTestSpace(t, 16, 8)
	mi, slot, ok := sp.alloc(1)
	if !ok {
		t.Fatal("alloc failed")
	}
	if _, code := sp.free(mi, slot); code != OK {
		t.Fatalf("first free: unexpected code %v", code)
	}
	if _, code := sp.free(mi, slot); code != MAPCORRUPT {
		t.Fatalf("expected MAPCORRUPT on double free, got %v", code)
	}
}

func TestSpaceAddrRoundTrip(t *testing.T) {
	sp := newTestSpace(t, 16, 16)
	mi, slot, ok := sp.alloc(2)
	if !ok {
		t.Fatal("alloc failed")
	}
	addr := sp.addrOf(mi, slot)
	if !sp.contains(addr) {
		t.Fatalf("expected contains(%d) true", addr)
	}
	gotMi, gotSlot := sp.slotOf(addr)
	if gotMi != mi || gotSlot != slot {
		t.Fatalf("slotOf(%d) = (%d,%d), want (%d,%d)", addr, gotMi, gotSlot, mi, slot)
	}
}

func TestSpaceNeverSpansWordBoundary(t *testing.T) {
	sp := newTestSpace(t, 16, 8) // one word
	// fill slots 0..5, leaving 2 free at the tail.
	for i := 0; i < 6; i++ {
		if _, _, ok := sp.alloc(1); !ok {
			t.Fatalf("alloc %d failed", i)
		}
	}
	// a run of 3 cannot fit in the remaining 2 slots, and must not wrap
	// into a (nonexistent) next word.
	if _, _, ok := sp.alloc(3); ok {
		t.Fatalf("expected no-span allocation to fail, not wrap")
	}
}
