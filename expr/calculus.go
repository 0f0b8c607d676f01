package expr

// Derivative, Integral, Limit, and Series are delayed operator forms:
// the command dispatcher builds one of these to carry the operator's
// variable(s) and bounds, and the calculus engine either materializes
// it into a concrete result or, if it can't (e.g. a bare \lim with no
// bound variable), leaves it as a simplified-but-still-delayed value
// the renderer knows how to print.

type Derivative struct {
	Body  Expr
	Var   Expr // *Symbol
	Order int
}

func (d *Derivative) Kind() Kind   { return KindDerivative }
func (d *Derivative) String() string { return "d/d" + d.Var.String() + "(" + d.Body.String() + ")" }

type Integral struct {
	Body         Expr
	Var          Expr // *Symbol
	Lower, Upper Expr // both nil => indefinite
}

func (n *Integral) Kind() Kind { return KindIntegral }
func (n *Integral) String() string {
	if n.Lower != nil {
		return "∫[" + n.Lower.String() + "," + n.Upper.String() + "] " + n.Body.String() + " d" + n.Var.String()
	}
	return "∫ " + n.Body.String() + " d" + n.Var.String()
}

type Limit struct {
	Body  Expr
	Var   Expr // *Symbol, may be nil for a bare \lim with no variable
	Point Expr
}

func (l *Limit) Kind() Kind { return KindLimit }
func (l *Limit) String() string {
	if l.Var == nil {
		return "lim " + l.Body.String()
	}
	return "lim[" + l.Var.String() + "->" + l.Point.String() + "] " + l.Body.String()
}

type Series struct {
	Body  Expr
	Var   Expr // *Symbol
	Point Expr
	Order int
}

func (s *Series) Kind() Kind   { return KindSeries }
func (s *Series) String() string { return "series(" + s.Body.String() + ")" }
