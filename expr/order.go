package expr

// rank buckets expressions by variant so the canonicalizing
// constructors can produce a deterministic child order without a full
// mathematical total order (which this kernel doesn't attempt beyond
// what a textbook CAS needs).
func rank(e Expr) int {
	switch e.(type) {
	case *Integer, *Rational, *Float:
		return 0
	case *Constant:
		return 1
	case *Symbol:
		return 2
	case *Pow:
		return 3
	case *Applied:
		return 4
	case *Mul:
		return 5
	case *Add:
		return 6
	case *Matrix:
		return 7
	default:
		return 8
	}
}

// compare returns -1, 0, or 1, giving a total order over Expr used to
// sort Add terms and Mul factors into canonical position and to group
// like terms. It is not a mathematical ordering (it says nothing about
// magnitude for symbolic values) — only a stable one.
func compare(a, b Expr) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmpInt(ra, rb)
	}
	switch av := a.(type) {
	case *Integer:
		return av.Val.Cmp(b.(*Integer).Val)
	case *Rational:
		ra, _ := AsRat(av)
		rb, _ := AsRat(b)
		return ra.Cmp(rb)
	case *Float:
		return av.Val.Cmp(b.(*Float).Val)
	case *Constant:
		return cmpInt(int(av.C), int(b.(*Constant).C))
	case *Symbol:
		return cmpString(av.Name, b.(*Symbol).Name)
	case *Pow:
		bv := b.(*Pow)
		if c := compare(av.Base, bv.Base); c != 0 {
			return c
		}
		return compare(av.Exp, bv.Exp)
	case *Applied:
		bv := b.(*Applied)
		if c := cmpString(av.Head, bv.Head); c != 0 {
			return c
		}
		return compareSlice(av.Args, bv.Args)
	case *Mul:
		return compareSlice(av.Factors, b.(*Mul).Factors)
	case *Add:
		return compareSlice(av.Terms, b.(*Add).Terms)
	case *Matrix:
		bv := b.(*Matrix)
		if av.Rows != bv.Rows {
			return cmpInt(av.Rows, bv.Rows)
		}
		if av.Cols != bv.Cols {
			return cmpInt(av.Cols, bv.Cols)
		}
		return compareSlice(av.Data, bv.Data)
	default:
		return cmpString(a.String(), b.String())
	}
}

func compareSlice(a, b []Expr) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func sortExprs(s []Expr) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && compare(s[j-1], s[j]) > 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Equal reports whether a and b are structurally identical once both
// are in canonical form (which every Expr built through this package
// already is).
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Integer:
		return av.Val.Cmp(b.(*Integer).Val) == 0
	case *Rational:
		bv := b.(*Rational)
		return av.Num.Cmp(bv.Num) == 0 && av.Den.Cmp(bv.Den) == 0
	case *Float:
		return av.Val.Cmp(b.(*Float).Val) == 0
	case *Constant:
		return av.C == b.(*Constant).C
	case *Symbol:
		return av.Name == b.(*Symbol).Name
	case *Applied:
		bv := b.(*Applied)
		if av.Head != bv.Head || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *Add:
		return equalSlice(av.Terms, b.(*Add).Terms)
	case *Mul:
		return equalSlice(av.Factors, b.(*Mul).Factors)
	case *Pow:
		bv := b.(*Pow)
		return Equal(av.Base, bv.Base) && Equal(av.Exp, bv.Exp)
	case *Matrix:
		bv := b.(*Matrix)
		if av.Rows != bv.Rows || av.Cols != bv.Cols {
			return false
		}
		return equalSlice(av.Data, bv.Data)
	case *Equation:
		bv := b.(*Equation)
		return Equal(av.Lhs, bv.Lhs) && Equal(av.Rhs, bv.Rhs)
	default:
		return a.String() == b.String()
	}
}

func equalSlice(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
