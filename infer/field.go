package infer

import (
	cerrors "github.com/cockroachdb/errors"

	"github.com/chriso345/soya/core"
	"github.com/chriso345/soya/errors"
)

// Field is the accumulated value of one bound option. It belongs to the
// parser it was bound to and is rebuilt from scratch by every parse.
type Field[T any] struct {
	opt     *core.Opt
	value   T
	present bool
}

// Bind fills cfg from inf, registers the resulting option with p and
// attaches the handler that folds each occurrence into the returned field.
func Bind[T, V any](p *core.Parser, cfg *core.Config, inf Infer[T, V]) (*Field[T], error) {
	if err := Fill(inf, cfg); err != nil {
		return nil, err
	}
	uid, err := p.Insert(cfg)
	if err != nil {
		return nil, err
	}
	opt, _ := p.Get(uid)

	f := &Field[T]{opt: opt}
	f.value, f.present = inf.New()
	p.OnReset(func() { f.value, f.present = inf.New() })

	err = p.On(uid, func(ctx *core.Ctx, raw any, rerr error) error {
		var val V
		if rerr == nil {
			v, ok := raw.(V)
			if !ok {
				rerr = errors.NewConversion(opt.Name(), ctx.Arg,
					cerrors.Newf("option produced %T, field expects %T", raw, val))
			}
			val = v
		}
		if f.present {
			return inf.Update(&f.value, val, rerr)
		}
		v, err := inf.Map(val, rerr)
		if err != nil {
			return err
		}
		f.value, f.present = v, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Opt returns the option the field is bound to.
func (f *Field[T]) Opt() *core.Opt { return f.opt }

// Present reports whether the field holds a value, seeded or matched.
func (f *Field[T]) Present() bool { return f.present }

// Value returns the accumulated value. A forced option that never matched
// yields a missing argument error; any other field without a value yields
// the zero T.
func (f *Field[T]) Value() (T, error) {
	if !f.opt.Valid() {
		var zero T
		return zero, errors.NewMissingArg(f.opt.Name())
	}
	return f.value, nil
}
