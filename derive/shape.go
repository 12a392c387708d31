package derive

import (
	"reflect"

	"github.com/chriso345/soya/core"
	"github.com/chriso345/soya/infer"
)

type role int

const (
	roleOption role = iota
	rolePos
	roleMain
)

// binding is one struct field on its way to becoming an option.
type binding struct {
	p    *core.Parser
	cfg  *core.Config
	role role
	dst  reflect.Value
}

// setter copies an accumulated value into its struct field.
type setter func() error

type binder func(b *binding) (setter, error)

// shapes maps every supported field type to its binder.
var shapes = map[reflect.Type]binder{}

func init() {
	register(infer.Bool)
	register(infer.Int)
	register(infer.Int8)
	register(infer.Int16)
	register(infer.Int32)
	register(infer.Int64)
	register(infer.Uint)
	register(infer.Uint8)
	register(infer.Uint16)
	register(infer.Uint32)
	register(infer.Uint64)
	register(infer.Float32)
	register(infer.Float64)
	register(infer.String)
	register(infer.Stdin)
	register(infer.Stop)
}

// register adds T and the composite shapes built on it: *T, []T, *[]T and
// infer.Result[T].
func register[T any](mk func() infer.Infer[T, T]) {
	shapes[reflect.TypeFor[T]()] = func(b *binding) (setter, error) {
		return bindField(b, mk())
	}
	shapes[reflect.TypeFor[*T]()] = func(b *binding) (setter, error) {
		return bindField(b, infer.Optional(mk()))
	}
	shapes[reflect.TypeFor[[]T]()] = func(b *binding) (setter, error) {
		return bindField(b, infer.Slice(mk()))
	}
	shapes[reflect.TypeFor[*[]T]()] = func(b *binding) (setter, error) {
		return bindField(b, infer.Optional(infer.Slice(mk())))
	}
	shapes[reflect.TypeFor[infer.Result[T]]()] = func(b *binding) (setter, error) {
		return bindField(b, infer.Fallible(mk()))
	}
}

// isMulti reports whether a field type collects more than one occurrence.
func isMulti(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Slice
}

func bindField[T, V any](b *binding, inf infer.Infer[T, V]) (setter, error) {
	switch b.role {
	case rolePos:
		inf = infer.Pos(inf)
	case roleMain:
		inf = infer.Main(inf)
	}

	f, err := infer.Bind(b.p, b.cfg, inf)
	if err != nil {
		return nil, err
	}
	return func() error {
		v, err := f.Value()
		if err != nil {
			return err
		}
		b.dst.Set(reflect.ValueOf(&v).Elem())
		return nil
	}, nil
}
