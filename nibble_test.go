package blockpool

import "testing"

func TestAllocMask(t *testing.T) {
	cases := []struct {
		k    int
		want uint32
	}{
		{1, 0x10000000},
		{2, 0xF1000000},
		{3, 0xFF100000},
		{8, 0xFFFFFFF1},
	}
	for _, c := range cases {
		if got := allocMask(c.k); got != c.want {
			t.Errorf("allocMask(%d) = %08X, want %08X", c.k, got, c.want)
		}
	}
}

func TestAllocMaskSlideMatchesSlot(t *testing.T) {
	// length 3 at slot 2: "0 0 F F 1 0 0 0"
	mask := allocMask(3) >> uint(4*2)
	want := []uint32{0, 0, 0xF, 0xF, 0x1, 0, 0, 0}
	for i, w := range want {
		if got := nibbleAt(mask, i); got != w {
			t.Errorf("nibble %d = %X, want %X", i, got, w)
		}
	}
}

func TestScanWordEmptyAcceptsSlotZero(t *testing.T) {
	slot, mask, ok := scanWord(0, 3)
	if !ok || slot != 0 {
		t.Fatalf("expected slot 0 accepted, got slot=%d ok=%v", slot, ok)
	}
	if mask != allocMask(3) {
		t.Errorf("mask = %08X, want %08X", mask, allocMask(3))
	}
}

func TestScanWordFirstFit(t *testing.T) {
	// occupy slot 0 (length 1): nibble0 = 1
	word := uint32(0x10000000)
	slot, _, ok := scanWord(word, 1)
	if !ok || slot != 1 {
		t.Fatalf("expected first free slot 1, got slot=%d ok=%v", slot, ok)
	}
}

func TestScanWordNoRoom(t *testing.T) {
	_, _, ok := scanWord(0xFFFFFFFF, 1)
	if ok {
		t.Fatalf("expected no room in a full word")
	}
}

func TestRunLengthAndCorrupt(t *testing.T) {
	// length 3 at slot 2: F F 1 at nibbles 2,3,4
	word := uint32(0x00FF1000)
	end, ok := runLength(word, 2)
	if !ok || end != 4 {
		t.Fatalf("expected end slot 4, got end=%d ok=%v", end, ok)
	}

	// double free: nibble at start is already 0 (free), not F or 1.
	if _, ok := runLength(0, 2); ok {
		t.Fatalf("expected corruption reading a free nibble as a run start")
	}

	// run never terminated within the word.
	allCont := uint32(0xFFFFFFFF)
	if _, ok := runLength(allCont, 0); ok {
		t.Fatalf("expected corruption when no end-marker is found")
	}
}

func TestClearMask(t *testing.T) {
	word := uint32(0x00FF1000) // run at slots 2..4
	cleared := word &^ clearMask(2, 4)
	if cleared != 0 {
		t.Errorf("expected word fully cleared, got %08X", cleared)
	}
}

func TestScanWordRunsReportsLengths(t *testing.T) {
	// slot0: length1 (0x1...), slots2-4: length3 (FF1), rest free.
	word := uint32(0x1)<<28 | uint32(0x00FF1000)
	var counts [8]int64
	if code := scanWordRuns(word, &counts); code != OK {
		t.Fatalf("unexpected code %v", code)
	}
	if counts[0] != 1 {
		t.Errorf("expected 1 run of length 1, got %d", counts[0])
	}
	if counts[2] != 1 {
		t.Errorf("expected 1 run of length 3, got %d", counts[2])
	}
}
