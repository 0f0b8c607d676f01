package dispatch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lacas-dev/lacas/config"
	"github.com/lacas-dev/lacas/dispatch"
	"github.com/lacas-dev/lacas/session"
)

func newSession() (*session.Session, *config.Config) {
	return session.New(), config.New()
}

func evalJSON(t *testing.T, sess *session.Session, cfg *config.Config, raw string) gjson.Result {
	t.Helper()
	return gjson.Parse(dispatch.Eval(raw, sess, cfg).JSON())
}

func TestAssignmentThenLookup(t *testing.T) {
	sess, cfg := newSession()
	r1 := evalJSON(t, sess, cfg, "x=5")
	require.True(t, r1.Get("ok").Bool())
	require.Equal(t, "assignment", r1.Get("type").String())
	require.Equal(t, "x", r1.Get("name").String())

	r2 := evalJSON(t, sess, cfg, "x")
	require.True(t, r2.Get("ok").Bool())
	require.Equal(t, "5", r2.Get("plain").String())
}

func TestCascadingDependencyUpdate(t *testing.T) {
	sess, cfg := newSession()
	evalJSON(t, sess, cfg, "a=1")
	evalJSON(t, sess, cfg, "b=a+1")
	evalJSON(t, sess, cfg, "c=b+1")
	r := evalJSON(t, sess, cfg, "d=c+1")
	require.Equal(t, "4", r.Get("plain").String())

	evalJSON(t, sess, cfg, "a=10")
	r2 := evalJSON(t, sess, cfg, "d")
	require.Equal(t, "13", r2.Get("plain").String())
}

func TestCircularDependencyReportsError(t *testing.T) {
	sess, cfg := newSession()
	evalJSON(t, sess, cfg, "p=q+1")
	r := evalJSON(t, sess, cfg, "q=p+1")
	require.False(t, r.Get("ok").Bool(), "q is bound, but echoing its resolved value already walks q -> p -> q")

	r2 := evalJSON(t, sess, cfg, "p")
	require.False(t, r2.Get("ok").Bool())
	require.Contains(t, strings.ToLower(r2.Get("error").String()), "ircular")
}

func TestFunctionDefinitionThenCall(t *testing.T) {
	sess, cfg := newSession()
	rdef := evalJSON(t, sess, cfg, "f(x)=x^2+1")
	require.Equal(t, "function_def", rdef.Get("type").String())
	require.Equal(t, "f", rdef.Get("name").String())

	rcall := evalJSON(t, sess, cfg, "f(3)")
	require.Contains(t, rcall.Get("plain").String(), "10")
}

func TestDefiniteIntegral(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, `\int_{0}^{5} 5x \, dx`)
	require.True(t, r.Get("ok").Bool())
	require.Contains(t, r.Get("plain").String(), "125")
}

func TestSumBigOperator(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, `\sum_{n=0}^{5} n`)
	require.Equal(t, "15", r.Get("plain").String())
}

func TestSumBigOperatorWithMathQuillSpacing(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, `\sum _0^5 n`)
	require.Equal(t, "15", r.Get("plain").String())
}

func TestProductBigOperatorWithZeroFactor(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, `\prod_{0}^{2} 5x`)
	require.Equal(t, "0", r.Get("plain").String())
}

func TestSolveQuadratic(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, "solve(x^2-5*x+6,x)")
	require.True(t, r.Get("ok").Bool())
	plain := r.Get("plain").String()
	require.Contains(t, plain, "2")
	require.Contains(t, plain, "3")
}

func TestSimplifyPythagoreanIdentity(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, "simplify(sin(x)^2+cos(x)^2)")
	require.Equal(t, "1", r.Get("plain").String())
}

func TestLimitCommand(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, "limit(sin(x)/x,x,0)")
	require.Equal(t, "1", r.Get("plain").String())
}

func TestMatrixDeterminant(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, `det(\begin{pmatrix}1&2\\3&4\end{pmatrix})`)
	require.True(t, r.Get("ok").Bool())
	require.Equal(t, "-2", r.Get("plain").String())
}

func TestEmptyInput(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, "   ")
	require.True(t, r.Get("ok").Bool())
	require.Equal(t, "empty", r.Get("type").String())
}

func TestBareLimitKeepsSymbolAndSimplifiesBody(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, `\lim x+2`)
	require.True(t, r.Get("ok").Bool())
	require.Contains(t, r.Get("plain").String(), "lim")
}

func TestMatrixLiteralEvaluatesCellwise(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, `\begin{pmatrix}1+1&2\\3&4\end{pmatrix}`)
	require.True(t, r.Get("ok").Bool())
	require.True(t, r.Get("is_matrix").Bool())
	require.Equal(t, float64(2), r.Get("rows").Float())
	require.Equal(t, float64(2), r.Get("cols").Float())
}

func TestArityMismatchReportsError(t *testing.T) {
	sess, cfg := newSession()
	r := evalJSON(t, sess, cfg, "diff(x)")
	require.False(t, r.Get("ok").Bool())
	require.NotEmpty(t, r.Get("error").String())
}
