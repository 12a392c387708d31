package infer

import "github.com/chriso345/soya/core"

// inner forwards every declaration method to the wrapped implementation.
// Composite shapes embed it and override what they change.
type inner[T, V any] struct {
	in Infer[T, V]
}

func (w inner[T, V]) Action() core.Action          { return w.in.Action() }
func (w inner[T, V]) Force() bool                  { return w.in.Force() }
func (w inner[T, V]) Ctor() string                 { return w.in.Ctor() }
func (w inner[T, V]) Index() (core.Index, bool)    { return w.in.Index() }
func (w inner[T, V]) Style() []core.Style          { return w.in.Style() }
func (w inner[T, V]) IgnoreName() bool             { return w.in.IgnoreName() }
func (w inner[T, V]) IgnoreAlias() bool            { return w.in.IgnoreAlias() }
func (w inner[T, V]) IgnoreIndex() bool            { return w.in.IgnoreIndex() }
func (w inner[T, V]) Type() core.TypeTag           { return w.in.Type() }
func (w inner[T, V]) Tweak(cfg *core.Config) error { return w.in.Tweak(cfg) }

// === OPTIONAL ===

type optional[T, V any] struct {
	inner[T, V]
}

// Optional makes a field of type *T: never forced, nil until its first
// occurrence unless T has a default of its own.
func Optional[T, V any](in Infer[T, V]) Infer[*T, V] {
	return optional[T, V]{inner[T, V]{in}}
}

func (optional[T, V]) Force() bool { return false }

func (o optional[T, V]) New() (*T, bool) {
	if v, ok := o.in.New(); ok {
		return &v, true
	}
	return nil, true
}

func (o optional[T, V]) Map(val V, err error) (*T, error) {
	v, err := o.in.Map(val, err)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Update folds into the present value, so an optional slice keeps growing
// across occurrences.
func (o optional[T, V]) Update(acc **T, val V, err error) error {
	if *acc != nil {
		return o.in.Update(*acc, val, err)
	}
	v, err := o.Map(val, err)
	if err != nil {
		return err
	}
	*acc = v
	return nil
}

// === SEQUENCE ===

type sequence[T, V any] struct {
	inner[T, V]
}

// Slice makes a field of type []T collecting one element per occurrence in
// arrival order. It is forced: at least one occurrence is required.
func Slice[T, V any](in Infer[T, V]) Infer[[]T, V] {
	return sequence[T, V]{inner[T, V]{in}}
}

func (sequence[T, V]) Action() core.Action { return core.ActionApp }
func (sequence[T, V]) Force() bool         { return true }

func (sequence[T, V]) New() ([]T, bool) { return []T{}, true }

func (s sequence[T, V]) Map(val V, err error) ([]T, error) {
	v, err := s.in.Map(val, err)
	if err != nil {
		return nil, err
	}
	return []T{v}, nil
}

func (s sequence[T, V]) Update(acc *[]T, val V, err error) error {
	v, err := s.in.Map(val, err)
	if err != nil {
		return err
	}
	*acc = append(*acc, v)
	return nil
}

// === FALLIBLE ===

// Result holds either a value or the error of the occurrence that failed.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the result holds a value.
func (r Result[T]) Ok() bool { return r.Err == nil }

// Unwrap returns the value, or the error.
func (r Result[T]) Unwrap() (T, error) { return r.Value, r.Err }

type fallible[T, V any] struct {
	inner[T, V]
}

// Fallible makes a field of type Result[T]. Conversion failures are kept in
// the field instead of aborting the parse.
//
// Once the field holds an error, later successful occurrences leave it
// alone; only another failing occurrence replaces it.
func Fallible[T, V any](in Infer[T, V]) Infer[Result[T], V] {
	return fallible[T, V]{inner[T, V]{in}}
}

func (fallible[T, V]) Force() bool { return false }

func (f fallible[T, V]) New() (Result[T], bool) {
	v, ok := f.in.New()
	if !ok {
		return Result[T]{}, false
	}
	return Result[T]{Value: v}, true
}

func (f fallible[T, V]) Map(val V, err error) (Result[T], error) {
	if err != nil {
		return Result[T]{Err: err}, nil
	}
	v, err := f.in.Map(val, nil)
	return Result[T]{Value: v, Err: err}, nil
}

func (f fallible[T, V]) Update(acc *Result[T], val V, err error) error {
	if err != nil {
		*acc = Result[T]{Err: err}
		return nil
	}
	if acc.Err != nil {
		return nil
	}
	return f.in.Update(&acc.Value, val, nil)
}

// === POSITIONAL ===

type positional[T, V any] struct {
	inner[T, V]
}

// Pos makes the field positional. Name and alias no longer take part in
// matching; the configuration must provide an index unless the inner type
// brings one.
func Pos[T, V any](in Infer[T, V]) Infer[T, V] {
	return positional[T, V]{inner[T, V]{in}}
}

func (positional[T, V]) Action() core.Action { return core.ActionSet }
func (positional[T, V]) Style() []core.Style { return []core.Style{core.StylePos} }
func (positional[T, V]) IgnoreName() bool    { return true }
func (positional[T, V]) IgnoreAlias() bool   { return true }
func (positional[T, V]) IgnoreIndex() bool   { return false }

func (p positional[T, V]) New() (T, bool)                        { return p.in.New() }
func (p positional[T, V]) Map(val V, err error) (T, error)       { return p.in.Map(val, err) }
func (p positional[T, V]) Update(acc *T, val V, err error) error { return p.in.Update(acc, val, err) }

// === CATCH-ALL ===

type catchAll[T, V any] struct {
	inner[T, V]
}

// Main makes the field receive every positional slot.
func Main[T, V any](in Infer[T, V]) Infer[T, V] {
	return catchAll[T, V]{inner[T, V]{in}}
}

func (catchAll[T, V]) Action() core.Action       { return core.ActionNull }
func (catchAll[T, V]) Index() (core.Index, bool) { return core.Anywhere(), true }
func (catchAll[T, V]) Style() []core.Style       { return []core.Style{core.StyleMain} }
func (catchAll[T, V]) IgnoreName() bool          { return true }
func (catchAll[T, V]) IgnoreAlias() bool         { return true }
func (catchAll[T, V]) IgnoreIndex() bool         { return false }

func (m catchAll[T, V]) New() (T, bool)                        { return m.in.New() }
func (m catchAll[T, V]) Map(val V, err error) (T, error)       { return m.in.Map(val, err) }
func (m catchAll[T, V]) Update(acc *T, val V, err error) error { return m.in.Update(acc, val, err) }
