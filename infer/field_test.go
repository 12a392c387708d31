package infer

import (
	stderrs "errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriso345/soya/core"
	"github.com/chriso345/soya/errors"
)

func named(name string) *core.Config { return core.NewConfig().SetName(name) }

func TestBind_Boolean(t *testing.T) {
	p := core.NewParser()
	debug, err := Bind(p, named("--debug"), Bool())
	require.NoError(t, err)

	_, err = p.Parse([]string{"app"})
	require.NoError(t, err)
	v, err := debug.Value()
	require.NoError(t, err)
	assert.False(t, v)

	_, err = p.Parse([]string{"app", "--debug"})
	require.NoError(t, err)
	v, err = debug.Value()
	require.NoError(t, err)
	assert.True(t, v)
}

func TestBind_PositionalSequence(t *testing.T) {
	p := core.NewParser()
	files, err := Bind(p, named("files").SetIndex(core.RangeFrom(1)), Pos(Slice(String())))
	require.NoError(t, err)

	_, err = p.Parse([]string{"app", "a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, p.Finalize())

	v, err := files.Value()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v)
}

func TestBind_OptionalUnsigned(t *testing.T) {
	p := core.NewParser()
	depth, err := Bind(p, named("--depth"), Optional(Uint64()))
	require.NoError(t, err)

	_, err = p.Parse([]string{"app"})
	require.NoError(t, err)
	require.NoError(t, p.Finalize())
	v, err := depth.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = p.Parse([]string{"app", "--depth", "5"})
	require.NoError(t, err)
	v, err = depth.Value()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, uint64(5), *v)
}

func TestBind_RequiredPositionalMissing(t *testing.T) {
	p := core.NewParser()
	repo, err := Bind(p, named("repo").SetIndex(core.Forward(1)), Pos(String()))
	require.NoError(t, err)

	_, err = p.Parse([]string{"git"})
	require.NoError(t, err)

	err = p.Finalize()
	require.Error(t, err)
	assert.True(t, stderrs.Is(err, errors.ErrMissingArg))
	assert.Contains(t, err.Error(), "repo")

	_, err = repo.Value()
	var e *errors.Error
	require.True(t, stderrs.As(err, &e))
	assert.Equal(t, "repo", e.Field)
}

func TestBind_CommandHandsOverRest(t *testing.T) {
	p := core.NewParser()
	clone, err := Bind(p, named("clone").SetIndex(core.Forward(1)), Cmd())
	require.NoError(t, err)

	res, err := p.Parse([]string{"git", "clone", "url"})
	require.NoError(t, err)
	require.NoError(t, p.Finalize())

	v, err := clone.Value()
	require.NoError(t, err)
	assert.True(t, v)
	assert.Equal(t, "clone", res.Cmd)
	assert.Equal(t, []string{"git", "url"}, res.Rest)

	sub := core.NewParser()
	url, err := Bind(sub, named("url").SetIndex(core.Forward(1)), Pos(String()))
	require.NoError(t, err)
	_, err = sub.Parse(res.Rest)
	require.NoError(t, err)

	u, err := url.Value()
	require.NoError(t, err)
	assert.Equal(t, "url", u)
}

func TestBind_ScalarLastWins(t *testing.T) {
	p := core.NewParser()
	n, err := Bind(p, named("--n").AddAlias("-n"), Int())
	require.NoError(t, err)

	_, err = p.Parse([]string{"app", "--n", "1", "-n", "2", "--n=3"})
	require.NoError(t, err)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestBind_ConversionAbortsPlainField(t *testing.T) {
	p := core.NewParser()
	_, err := Bind(p, named("--n"), Int())
	require.NoError(t, err)

	_, err = p.Parse([]string{"app", "--n", "one"})
	require.Error(t, err)
	assert.True(t, stderrs.Is(err, errors.ErrConversion))
	assert.Contains(t, err.Error(), `"one"`)
}

func TestBind_FallibleKeepsError(t *testing.T) {
	p := core.NewParser()
	n, err := Bind(p, named("--n"), Fallible(Int()))
	require.NoError(t, err)

	_, err = p.Parse([]string{"app", "--n", "1", "--n", "x", "--n", "2"})
	require.NoError(t, err)
	v, err := n.Value()
	require.NoError(t, err)
	assert.False(t, v.Ok())
	assert.True(t, stderrs.Is(v.Err, errors.ErrConversion))

	_, err = p.Parse([]string{"app", "--n", "1", "--n", "2"})
	require.NoError(t, err)
	v, _ = n.Value()
	got, err := v.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestBind_OptionalSliceAcrossFlags(t *testing.T) {
	p := core.NewParser()
	tags, err := Bind(p, named("--tag").AddAlias("-t"), Optional(Slice(String())))
	require.NoError(t, err)

	_, err = p.Parse([]string{"app", "-t", "a", "--tag", "b", "-t=c"})
	require.NoError(t, err)
	v, err := tags.Value()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, []string{"a", "b", "c"}, *v)
}

func TestBind_CatchAll(t *testing.T) {
	p := core.NewParser()
	first, err := Bind(p, named("first").SetIndex(core.Forward(1)), Pos(String()))
	require.NoError(t, err)
	all, err := Bind(p, named("args"), Main(Slice(String())))
	require.NoError(t, err)

	_, err = p.Parse([]string{"app", "x", "y"})
	require.NoError(t, err)

	f, _ := first.Value()
	a, _ := all.Value()
	assert.Equal(t, "x", f)
	assert.Equal(t, []string{"x", "y"}, a)
}

func TestBind_StdinAndStop(t *testing.T) {
	p := core.NewParser(core.WithStdin(strings.NewReader("piped")))
	in, err := Bind(p, named("--input"), Optional(Stdin()))
	require.NoError(t, err)
	end, err := Bind(p, core.NewConfig(), Optional(Stop()))
	require.NoError(t, err)
	rest, err := Bind(p, named("rest").SetIndex(core.RangeFrom(1)), Pos(Optional(Slice(String()))))
	require.NoError(t, err)

	assert.Equal(t, "-", in.Opt().Name())
	assert.Equal(t, []string{"--input"}, in.Opt().Alias())
	assert.Equal(t, "--", end.Opt().Name())

	_, err = p.Parse([]string{"app", "-", "--", "-v"})
	require.NoError(t, err)

	s, _ := in.Value()
	require.NotNil(t, s)
	data, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "piped", string(data))

	e, _ := end.Value()
	assert.NotNil(t, e)
	r, _ := rest.Value()
	require.NotNil(t, r)
	assert.Equal(t, []string{"-v"}, *r)
}

func TestBind_TypeMismatch(t *testing.T) {
	p := core.NewParser()
	_, err := Bind(p, named("--n").SetType(core.TypeString), Int())
	require.NoError(t, err)

	_, err = p.Parse([]string{"app", "--n", "1"})
	require.Error(t, err)
	assert.True(t, stderrs.Is(err, errors.ErrConversion))
}

func TestBind_IncompleteConfig(t *testing.T) {
	p := core.NewParser()
	_, err := Bind(p, core.NewConfig(), Int())
	assert.True(t, stderrs.Is(err, errors.ErrIncompleteConfig))
}
