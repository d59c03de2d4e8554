package gf2

import "testing"

func TestMulAdd(t *testing.T) {
	a, err := FromRows([][]uint8{
		{1, 0, 1},
		{0, 1, 1},
	})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	b, err := FromRows([][]uint8{
		{1, 1},
		{0, 1},
		{1, 0},
	})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	got := Mul(a, b)
	want, _ := FromRows([][]uint8{
		{0, 1},
		{1, 1},
	})
	if !got.Equal(want) {
		t.Fatalf("Mul = %v want %v", got.Data, want.Data)
	}

	sum := Add(got, want)
	for i, v := range sum.Data {
		if v != 0 {
			t.Fatalf("A ⊕ A nonzero at %d", i)
		}
	}
}

func TestVecColumnMajor(t *testing.T) {
	m, _ := FromRows([][]uint8{
		{1, 0},
		{0, 1},
		{1, 1},
	})
	// Columns read top to bottom: (1,0,1) then (0,1,1).
	want := []uint8{1, 0, 1, 0, 1, 1}
	if !EqualVec(m.Vec(), want) {
		t.Fatalf("Vec = %v want %v", m.Vec(), want)
	}
}

func TestIdentityConcat(t *testing.T) {
	id := Identity(2)
	cp, _ := FromRows([][]uint8{
		{1, 0, 1},
		{0, 1, 0},
	})
	c := HConcat(id, cp)
	if c.Rows != 2 || c.Cols != 5 {
		t.Fatalf("HConcat shape %dx%d", c.Rows, c.Cols)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := uint8(0)
			if i == j {
				want = 1
			}
			if c.At(i, j) != want {
				t.Fatalf("identity block wrong at (%d,%d)", i, j)
			}
		}
	}
	if c.At(0, 2) != 1 || c.At(1, 3) != 1 {
		t.Fatalf("concatenated block misplaced")
	}
}

func TestMulVec(t *testing.T) {
	a, _ := FromRows([][]uint8{
		{1, 1, 0},
		{0, 1, 1},
	})
	v := []uint8{1, 1, 1}
	got := MulVec(a, v)
	if !EqualVec(got, []uint8{0, 0}) {
		t.Fatalf("MulVec = %v", got)
	}
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	if _, err := FromRows([][]uint8{{1, 0}, {1}}); err == nil {
		t.Fatalf("ragged matrix accepted")
	}
	if _, err := FromRows([][]uint8{{2}}); err == nil {
		t.Fatalf("non-binary entry accepted")
	}
	if _, err := FromRows(nil); err == nil {
		t.Fatalf("empty matrix accepted")
	}
}

func TestDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Mul with mismatched dims did not panic")
		}
	}()
	Mul(Identity(2), Identity(3))
}
