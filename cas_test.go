package lacas_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lacas-dev/lacas"
)

func TestEngineEvalAndIntrospect(t *testing.T) {
	e := lacas.New()
	r := gjson.Parse(e.Eval("x=5"))
	require.True(t, r.Get("ok").Bool())

	state := gjson.Parse(e.Introspect())
	require.Equal(t, "5", state.Get("variables.x.latex").String())
}

func TestEngineClearResetsBindings(t *testing.T) {
	e := lacas.New()
	e.Eval("x=5")
	r := gjson.Parse(e.Clear())
	require.True(t, r.Get("ok").Bool())

	state := gjson.Parse(e.Introspect())
	require.False(t, state.Get("variables.x").Exists())
}

func TestEngineSetPrecisionAffectsN(t *testing.T) {
	e := lacas.New()
	e.SetPrecision(5)
	r := gjson.Parse(e.Eval("n(1/3)"))
	require.True(t, r.Get("ok").Bool())
	require.Equal(t, "0.33333", r.Get("plain").String())
}

func TestInfoReportsName(t *testing.T) {
	require.Equal(t, "lacas", lacas.Info()["name"])
}
