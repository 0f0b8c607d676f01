package render

import (
	"github.com/tidwall/sjson"
)

// Type is the classification tag spec §4.9 assigns to every
// successful evaluation.
type Type string

const (
	TypeValue      Type = "value"
	TypeAssignment Type = "assignment"
	TypeFunctionDef Type = "function_def"
	TypeCommand    Type = "command"
	TypeEquation   Type = "equation"
	TypeEmpty      Type = "empty"
)

// Result is the successful-evaluation record (spec §4.9, §6). It is
// built field-by-field through Builder rather than filled in as a
// struct literal and marshaled, mirroring how a record with many
// optional fields is naturally assembled with sjson.
type Result struct {
	json string
}

// JSON returns the {ok:true, ...} JSON object as a string.
func (r Result) JSON() string { return r.json }

// Builder assembles a Result one optional field at a time. The zero
// value is not usable; start with NewBuilder.
type Builder struct {
	json string
}

func NewBuilder(latex, plain string, typ Type) *Builder {
	j, _ := sjson.Set("", "ok", true)
	j, _ = sjson.Set(j, "latex", latex)
	j, _ = sjson.Set(j, "plain", plain)
	j, _ = sjson.Set(j, "type", string(typ))
	return &Builder{json: j}
}

func (b *Builder) Numeric(latex, plain string) *Builder {
	b.json, _ = sjson.Set(b.json, "numeric_latex", latex)
	b.json, _ = sjson.Set(b.json, "numeric_plain", plain)
	return b
}

func (b *Builder) Matrix(rows, cols int) *Builder {
	b.json, _ = sjson.Set(b.json, "is_matrix", true)
	b.json, _ = sjson.Set(b.json, "rows", rows)
	b.json, _ = sjson.Set(b.json, "cols", cols)
	return b
}

func (b *Builder) Name(name string) *Builder {
	b.json, _ = sjson.Set(b.json, "name", name)
	return b
}

func (b *Builder) Params(params []string) *Builder {
	b.json, _ = sjson.Set(b.json, "params", params)
	return b
}

func (b *Builder) Pivots(pivots []int) *Builder {
	b.json, _ = sjson.Set(b.json, "pivots", pivots)
	return b
}

func (b *Builder) Build() Result { return Result{json: b.json} }

// Empty returns the {ok:true, type:"empty"} record for blank input
// (spec §4.1 step 1, §8 scenario 11).
func Empty() Result {
	j, _ := sjson.Set("", "ok", true)
	j, _ = sjson.Set(j, "type", string(TypeEmpty))
	return Result{json: j}
}

// ErrorResult builds the {ok:false, error:"..."} shape (spec §6, §7).
func ErrorResult(message string) Result {
	j, _ := sjson.Set("", "ok", false)
	j, _ = sjson.Set(j, "error", message)
	return Result{json: j}
}

// StateJSON builds the introspection JSON object (spec §6): {variables:
// {name: {latex, deps[]}}, functions: {name: {latex, params[], deps[]}}}.
func StateJSON(vars []VarView, funcs []FuncView) string {
	j := "{}"
	for _, v := range vars {
		j, _ = sjson.Set(j, "variables."+v.Name+".latex", v.Latex)
		j, _ = sjson.Set(j, "variables."+v.Name+".deps", v.Deps)
	}
	for _, f := range funcs {
		j, _ = sjson.Set(j, "functions."+f.Name+".latex", f.Latex)
		j, _ = sjson.Set(j, "functions."+f.Name+".params", f.Params)
		j, _ = sjson.Set(j, "functions."+f.Name+".deps", f.Deps)
	}
	return j
}

// VarView and FuncView decouple render's JSON assembly from the
// session package's binding types, avoiding an import cycle (session
// already imports render to produce Snapshot's Latex fields).
type VarView struct {
	Name  string
	Latex string
	Deps  []string
}

type FuncView struct {
	Name   string
	Latex  string
	Params []string
	Deps   []string
}

// ClearJSON returns the {ok:true} shape Clear() produces (spec §6).
func ClearJSON() string {
	j, _ := sjson.Set("", "ok", true)
	return j
}
