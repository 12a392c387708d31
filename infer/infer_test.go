package infer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriso345/soya/core"
	"github.com/chriso345/soya/errors"
)

// decl is the part of a filled configuration the composition rules decide.
type decl struct {
	Action core.Action
	Force  bool
	Style  []core.Style
	Index  string
	Ignore [3]bool
	Type   core.TypeTag
}

func filled[T, V any](t *testing.T, inf Infer[T, V]) decl {
	t.Helper()
	cfg := core.NewConfig().SetName("field")
	require.NoError(t, Fill(inf, cfg))

	action, _ := cfg.Action()
	force, _ := cfg.Force()
	style, _ := cfg.Style()
	typ, _ := cfg.Type()
	idx := "none"
	if i, ok := cfg.Index(); ok {
		idx = i.String()
	}
	return decl{
		Action: action,
		Force:  force,
		Style:  style,
		Index:  idx,
		Ignore: [3]bool{cfg.IgnoreName(), cfg.IgnoreAlias(), cfg.IgnoreIndex()},
		Type:   typ,
	}
}

var (
	argument = []core.Style{core.StyleArgument}
	toggle   = []core.Style{core.StyleCombined, core.StyleBoolean}
	bare     = []core.Style{core.StyleBoolean}
)

func TestFill_CompositionTable(t *testing.T) {
	cases := []struct {
		name string
		got  decl
		want decl
	}{
		{"int", filled(t, Int()),
			decl{core.ActionSet, true, argument, "none", [3]bool{false, false, true}, core.TypeInt}},
		{"path", filled(t, Path()),
			decl{core.ActionSet, true, argument, "none", [3]bool{false, false, true}, core.TypePath}},
		{"bool", filled(t, Bool()),
			decl{core.ActionSet, false, toggle, "none", [3]bool{false, false, true}, core.TypeBool}},
		{"cmd", filled(t, Cmd()),
			decl{core.ActionSet, true, []core.Style{core.StyleCmd}, "1", [3]bool{false, false, false}, core.TypeCmd}},
		{"stdin", filled(t, Stdin()),
			decl{core.ActionSet, true, bare, "none", [3]bool{false, true, true}, core.TypeStdin}},
		{"stop", filled(t, Stop()),
			decl{core.ActionSet, true, bare, "none", [3]bool{false, true, true}, core.TypeStop}},
		{"optional int", filled(t, Optional(Int())),
			decl{core.ActionSet, false, argument, "none", [3]bool{false, false, true}, core.TypeInt}},
		{"optional bool", filled(t, Optional(Bool())),
			decl{core.ActionSet, false, toggle, "none", [3]bool{false, false, true}, core.TypeBool}},
		{"slice string", filled(t, Slice(String())),
			decl{core.ActionApp, true, argument, "none", [3]bool{false, false, true}, core.TypeString}},
		{"slice bool", filled(t, Slice(Bool())),
			decl{core.ActionApp, true, toggle, "none", [3]bool{false, false, true}, core.TypeBool}},
		{"fallible int", filled(t, Fallible(Int())),
			decl{core.ActionSet, false, argument, "none", [3]bool{false, false, true}, core.TypeInt}},
		{"pos string", filled(t, Pos(String())),
			decl{core.ActionSet, true, []core.Style{core.StylePos}, "none", [3]bool{true, true, false}, core.TypeString}},
		{"pos optional", filled(t, Pos(Optional(String()))),
			decl{core.ActionSet, false, []core.Style{core.StylePos}, "none", [3]bool{true, true, false}, core.TypeString}},
		{"pos cmd keeps index", filled(t, Pos(Cmd())),
			decl{core.ActionSet, true, []core.Style{core.StylePos}, "1", [3]bool{true, true, false}, core.TypeCmd}},
		{"main slice", filled(t, Main(Slice(String()))),
			decl{core.ActionNull, true, []core.Style{core.StyleMain}, "*", [3]bool{true, true, false}, core.TypeString}},
		{"optional cmd", filled(t, Optional(Cmd())),
			decl{core.ActionSet, false, []core.Style{core.StyleCmd}, "1", [3]bool{false, false, false}, core.TypeCmd}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, c.got); diff != "" {
				t.Errorf("declaration mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFill_KeepsPresentAttributes(t *testing.T) {
	cfg := core.NewConfig().SetName("--debug").
		SetForce(true).
		SetAction(core.ActionNull).
		SetStyle(core.StyleBoolean).
		SetIndex(core.Forward(2)).
		SetType(core.TypeString).
		SetCtor("custom")
	require.NoError(t, Fill(Bool(), cfg))

	force, _ := cfg.Force()
	action, _ := cfg.Action()
	style, _ := cfg.Style()
	idx, _ := cfg.Index()
	typ, _ := cfg.Type()
	ctor, _ := cfg.Ctor()
	assert.True(t, force)
	assert.Equal(t, core.ActionNull, action)
	assert.Equal(t, []core.Style{core.StyleBoolean}, style)
	assert.Equal(t, "2", idx.String())
	assert.Equal(t, core.TypeString, typ)
	assert.Equal(t, "custom", ctor)
}

func TestFill_FillsAbsentAttributes(t *testing.T) {
	cfg := core.NewConfig().SetName("--depth")
	require.NoError(t, Fill(Optional(Uint64()), cfg))

	ctor, ok := cfg.Ctor()
	assert.True(t, ok)
	assert.Equal(t, core.DefaultCtor, ctor)
	assert.True(t, cfg.HasAction())
	assert.True(t, cfg.HasForce())
	assert.True(t, cfg.HasStyle())
	assert.True(t, cfg.HasType())
	assert.False(t, cfg.HasIndex(), "a type without an index leaves it absent")
	assert.False(t, cfg.HasHint())
}

// The ignore flags are not gated on presence: whatever the caller set is
// replaced by the type's answer.
func TestFill_IgnoreFlagsAlwaysOverwritten(t *testing.T) {
	cfg := core.NewConfig().SetName("repo").
		SetIgnoreName(false).
		SetIgnoreAlias(false).
		SetIgnoreIndex(true)
	require.NoError(t, Fill(Pos(String()), cfg))
	assert.True(t, cfg.IgnoreName())
	assert.True(t, cfg.IgnoreAlias())
	assert.False(t, cfg.IgnoreIndex())

	cfg = core.NewConfig().SetName("--name").
		SetIgnoreName(true).
		SetIgnoreAlias(true).
		SetIgnoreIndex(false)
	require.NoError(t, Fill(String(), cfg))
	assert.False(t, cfg.IgnoreName())
	assert.False(t, cfg.IgnoreAlias())
	assert.True(t, cfg.IgnoreIndex())
}

func TestFill_TweakRunsFirst(t *testing.T) {
	cfg := core.NewConfig().SetName("--input").AddAlias("-i")
	require.NoError(t, Fill(Stdin(), cfg))
	name, _ := cfg.Name()
	alias, _ := cfg.Alias()
	assert.Equal(t, "-", name)
	assert.Equal(t, []string{"-i", "--input"}, alias)

	// without a name there is nothing to demote
	cfg = core.NewConfig()
	require.NoError(t, Fill(Optional(Stdin()), cfg))
	name, _ = cfg.Name()
	assert.Equal(t, "-", name)
	assert.False(t, cfg.HasAlias())

	cfg = core.NewConfig().SetName("--end")
	require.NoError(t, Fill(Stop(), cfg))
	name, _ = cfg.Name()
	assert.Equal(t, "--", name)
	assert.False(t, cfg.HasAlias())
}

func TestScalar_Laws(t *testing.T) {
	s := Int()

	_, ok := s.New()
	assert.False(t, ok)

	v, err := s.Map(7, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	acc := v
	for _, next := range []int{3, 9, -1} {
		require.NoError(t, s.Update(&acc, next, nil))
		assert.Equal(t, next, acc)
	}

	failure := errors.NewConversion("--n", "x", assert.AnError)
	_, err = s.Map(0, failure)
	assert.ErrorIs(t, err, failure)
	assert.ErrorIs(t, s.Update(&acc, 0, failure), failure)
	assert.Equal(t, -1, acc, "a failed occurrence leaves the value alone")
}

func TestBool_Default(t *testing.T) {
	v, ok := Bool().New()
	assert.True(t, ok)
	assert.False(t, v)
}

func TestSlice_KeepsOrder(t *testing.T) {
	s := Slice(String())
	acc, ok := s.New()
	require.True(t, ok)
	assert.Empty(t, acc)

	for _, v := range []string{"b", "a", "b"} {
		require.NoError(t, s.Update(&acc, v, nil))
	}
	assert.Equal(t, []string{"b", "a", "b"}, acc)

	first, err := s.Map("x", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, first)
}

func TestOptional_Laws(t *testing.T) {
	o := Optional(Uint64())
	acc, ok := o.New()
	assert.True(t, ok)
	assert.Nil(t, acc)

	require.NoError(t, o.Update(&acc, 5, nil))
	require.NotNil(t, acc)
	assert.Equal(t, uint64(5), *acc)

	require.NoError(t, o.Update(&acc, 6, nil))
	assert.Equal(t, uint64(6), *acc)

	def, ok := Optional(Bool()).New()
	assert.True(t, ok)
	require.NotNil(t, def)
	assert.False(t, *def)
}

func TestOptional_SliceKeepsExtending(t *testing.T) {
	o := Optional(Slice(String()))
	acc, _ := o.New()
	require.NotNil(t, acc)

	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, o.Update(&acc, v, nil))
	}
	assert.Equal(t, []string{"a", "b", "c"}, *acc)
}

func TestFallible_StickyError(t *testing.T) {
	f := Fallible(Int())
	bad := errors.NewConversion("--n", "x", assert.AnError)
	worse := errors.NewConversion("--n", "y", assert.AnError)

	acc, err := f.Map(1, nil)
	require.NoError(t, err)
	assert.True(t, acc.Ok())

	// success then error: the error takes the field
	require.NoError(t, f.Update(&acc, 0, bad))
	assert.False(t, acc.Ok())
	assert.Equal(t, bad, acc.Err)

	// error then success: the error stays
	require.NoError(t, f.Update(&acc, 2, nil))
	assert.Equal(t, bad, acc.Err)

	// a different error replaces it
	require.NoError(t, f.Update(&acc, 0, worse))
	assert.Equal(t, worse, acc.Err)

	first, err := f.Map(0, bad)
	require.NoError(t, err, "failures are data, not aborts")
	_, err = first.Unwrap()
	assert.ErrorIs(t, err, bad)
}
