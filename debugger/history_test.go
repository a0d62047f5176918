package debugger

import "testing"

func TestHistory_RecordAndLast(t *testing.T) {
	h := NewHistory(10)
	if h.Last() != 0 {
		t.Errorf("Last() on empty history = %#x, want 0", h.Last())
	}
	h.Record(0x1000)
	h.Record(0x1004)
	if got := h.Last(); got != 0x1004 {
		t.Errorf("Last() = %#x, want 0x1004", got)
	}
	if got := h.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}
}

func TestHistory_TrimsToMaxSize(t *testing.T) {
	h := NewHistory(3)
	for i := uint32(0); i < 5; i++ {
		h.Record(i * 4)
	}
	all := h.All()
	if len(all) != 3 {
		t.Fatalf("len(All()) = %d, want 3", len(all))
	}
	want := []uint32{8, 12, 16}
	for i, v := range want {
		if all[i] != v {
			t.Errorf("All()[%d] = %#x, want %#x", i, all[i], v)
		}
	}
}

func TestHistory_AllReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Record(4)
	all := h.All()
	all[0] = 999
	if h.Last() != 4 {
		t.Errorf("mutating All() result affected internal state: Last() = %#x", h.Last())
	}
}
