package expr

import "fmt"

// Matrix is a 2-D rectangular array of expressions, stored row-major.
// Rows must be non-empty and every row the same width — the parser and
// any constructor that builds a Matrix from ragged input is required
// to reject it (jagged_matrix) before reaching here.
type Matrix struct {
	Rows, Cols int
	Data       []Expr // len == Rows*Cols, row-major
}

func (m *Matrix) Kind() Kind { return KindMatrix }
func (m *Matrix) String() string {
	s := "["
	for r := 0; r < m.Rows; r++ {
		if r > 0 {
			s += "; "
		}
		for c := 0; c < m.Cols; c++ {
			if c > 0 {
				s += ", "
			}
			s += m.At(r, c).String()
		}
	}
	return s + "]"
}

// NewMatrix builds a Matrix from row-major data. Panics if the data
// length doesn't match rows*cols or the matrix would be empty — both
// are kernel invariants the matrix parser must uphold before calling
// this, not situations a user input can legitimately trigger here.
func NewMatrix(rows, cols int, data []Expr) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic("expr: empty matrix")
	}
	if len(data) != rows*cols {
		panic(fmt.Sprintf("expr: matrix data length %d != %d*%d", len(data), rows, cols))
	}
	return &Matrix{Rows: rows, Cols: cols, Data: data}
}

func (m *Matrix) At(r, c int) Expr { return m.Data[r*m.Cols+c] }

func (m *Matrix) Set(r, c int, v Expr) {
	m.Data[r*m.Cols+c] = v
}

// IsSquare reports whether the matrix has equal row and column counts.
func (m *Matrix) IsSquare() bool { return m.Rows == m.Cols }

// Row returns a copy of row r as a slice of expressions.
func (m *Matrix) Row(r int) []Expr {
	out := make([]Expr, m.Cols)
	copy(out, m.Data[r*m.Cols:(r+1)*m.Cols])
	return out
}

// Col returns a copy of column c as a slice of expressions.
func (m *Matrix) Col(c int) []Expr {
	out := make([]Expr, m.Rows)
	for r := 0; r < m.Rows; r++ {
		out[r] = m.At(r, c)
	}
	return out
}

// Clone returns a shallow copy of m with its own backing array; entry
// Exprs are immutable and shared.
func (m *Matrix) Clone() *Matrix {
	data := make([]Expr, len(m.Data))
	copy(data, m.Data)
	return &Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// Equation is a first-class lhs = rhs value, used both for the
// `var = body` equation form and for solve()'s input.
type Equation struct {
	Lhs, Rhs Expr
}

func (e *Equation) Kind() Kind { return KindEquation }
func (e *Equation) String() string {
	return e.Lhs.String() + " = " + e.Rhs.String()
}
