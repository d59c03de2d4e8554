// Package gf2 provides dense matrix and vector arithmetic over GF(2).
//
// Matrices are fixed-dimension with entries constrained to {0,1}. Dimension
// mismatches are programming errors and panic; no operation fails at runtime
// on well-formed inputs. The column-major Vec order is part of the syndrome
// contract H = [I | H'] and must not change.
package gf2

import "fmt"

// Matrix is a dense row-major matrix over GF(2).
type Matrix struct {
	Rows int
	Cols int
	// Data holds entries row-major; each entry is 0 or 1.
	Data []uint8
}

// NewMatrix allocates a zero rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("gf2.NewMatrix: invalid shape %dx%d", rows, cols))
	}
	return &Matrix{Rows: rows, Cols: cols, Data: make([]uint8, rows*cols)}
}

// FromRows builds a matrix from nested rows, validating shape and entries.
// Unlike the arithmetic ops it returns an error: it is the entry point for
// untrusted decoded data.
func FromRows(rows [][]uint8) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("gf2: empty matrix")
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("gf2: ragged matrix at row %d: got %d cols want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("gf2: entry (%d,%d)=%d not in GF(2)", i, j, v)
			}
			m.Data[i*cols+j] = v
		}
	}
	return m, nil
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) uint8 { return m.Data[i*m.Cols+j] }

// Set writes v (0 or 1) at row i, column j.
func (m *Matrix) Set(i, j int, v uint8) { m.Data[i*m.Cols+j] = v & 1 }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}

// Bytes returns the entry bytes in row-major order. The result aliases
// nothing and is the canonical transcript encoding of a matrix.
func (m *Matrix) Bytes() []byte {
	out := make([]byte, len(m.Data))
	copy(out, m.Data)
	return out
}

// Equal reports whether two matrices have identical shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.Rows != o.Rows || m.Cols != o.Cols {
		return false
	}
	for i := range m.Data {
		if m.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}
	return m
}

// Mul computes the matrix product A·B mod 2.
func Mul(a, b *Matrix) *Matrix {
	if a.Cols != b.Rows {
		panic(fmt.Sprintf("gf2.Mul: dimension mismatch %dx%d · %dx%d", a.Rows, a.Cols, b.Rows, b.Cols))
	}
	out := NewMatrix(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for l := 0; l < a.Cols; l++ {
			if a.Data[i*a.Cols+l] == 0 {
				continue
			}
			for j := 0; j < b.Cols; j++ {
				out.Data[i*b.Cols+j] ^= b.Data[l*b.Cols+j]
			}
		}
	}
	return out
}

// Add computes the elementwise sum A ⊕ B.
func Add(a, b *Matrix) *Matrix {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic(fmt.Sprintf("gf2.Add: shape mismatch %dx%d vs %dx%d", a.Rows, a.Cols, b.Rows, b.Cols))
	}
	out := NewMatrix(a.Rows, a.Cols)
	for i := range a.Data {
		out.Data[i] = a.Data[i] ^ b.Data[i]
	}
	return out
}

// HConcat returns [A | B].
func HConcat(a, b *Matrix) *Matrix {
	if a.Rows != b.Rows {
		panic(fmt.Sprintf("gf2.HConcat: row mismatch %d vs %d", a.Rows, b.Rows))
	}
	out := NewMatrix(a.Rows, a.Cols+b.Cols)
	for i := 0; i < a.Rows; i++ {
		copy(out.Data[i*out.Cols:], a.Data[i*a.Cols:(i+1)*a.Cols])
		copy(out.Data[i*out.Cols+a.Cols:], b.Data[i*b.Cols:(i+1)*b.Cols])
	}
	return out
}

// Vec vectorizes the matrix in column-major order.
func (m *Matrix) Vec() []uint8 {
	out := make([]uint8, len(m.Data))
	idx := 0
	for j := 0; j < m.Cols; j++ {
		for i := 0; i < m.Rows; i++ {
			out[idx] = m.Data[i*m.Cols+j]
			idx++
		}
	}
	return out
}

// MulVec computes A·v mod 2 for a column vector v.
func MulVec(a *Matrix, v []uint8) []uint8 {
	if a.Cols != len(v) {
		panic(fmt.Sprintf("gf2.MulVec: dimension mismatch %dx%d · %d", a.Rows, a.Cols, len(v)))
	}
	out := make([]uint8, a.Rows)
	for i := 0; i < a.Rows; i++ {
		var acc uint8
		for j := 0; j < a.Cols; j++ {
			acc ^= a.Data[i*a.Cols+j] & v[j]
		}
		out[i] = acc
	}
	return out
}

// AddVec computes the elementwise sum u ⊕ v.
func AddVec(u, v []uint8) []uint8 {
	if len(u) != len(v) {
		panic(fmt.Sprintf("gf2.AddVec: length mismatch %d vs %d", len(u), len(v)))
	}
	out := make([]uint8, len(u))
	for i := range u {
		out[i] = u[i] ^ v[i]
	}
	return out
}

// EqualVec reports whether two vectors are identical.
func EqualVec(u, v []uint8) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if u[i] != v[i] {
			return false
		}
	}
	return true
}
