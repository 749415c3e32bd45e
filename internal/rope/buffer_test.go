package rope

import "testing"

func TestBufferResize(t *testing.T) {
	var b Buffer
	if !b.Empty() {
		t.Fatal("fresh buffer should be empty")
	}

	b.Resize(7)
	if b.Len() != 7 || b.Empty() {
		t.Fatalf("expected length 7, got %d", b.Len())
	}
	if b.Last() != 6 {
		t.Errorf("Last() = %d, expected 6", b.Last())
	}
	for _, n := range []int{
		len(b.Pos), len(b.Prev), len(b.Acc), len(b.Attached),
		len(b.Tangent), len(b.Normal), len(b.Binormal),
	} {
		if n != 7 {
			t.Fatalf("parallel array length %d, expected 7", n)
		}
	}

	// Resize discards content.
	b.Pos[3][0] = 5
	b.Resize(4)
	if b.Pos[3][0] != 0 {
		t.Error("resize should discard prior contents")
	}

	b.Resize(0)
	if !b.Empty() {
		t.Error("resize(0) should leave the buffer empty")
	}
}
