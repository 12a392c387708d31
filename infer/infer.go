// Package infer derives option configurations from value types and folds
// parsed occurrences into typed field values.
//
// Every supported field type has an Infer implementation: scalars implement
// it directly, and the composite shapes (Optional, Slice, Fallible, Pos,
// Main) wrap the implementation of their inner type and delegate to it.
package infer

import "github.com/chriso345/soya/core"

// Accumulator folds the occurrences of one option into a value of type T.
// V is the raw value type the parser produces for the option.
type Accumulator[T, V any] interface {
	// New returns the value a field holds before any occurrence, if any.
	New() (T, bool)
	// Map builds the field value from its first occurrence. err is the
	// conversion error of the occurrence, if it failed.
	Map(val V, err error) (T, error)
	// Update folds a further occurrence into acc.
	Update(acc *T, val V, err error) error
}

// Infer is the declaration side of a field type: the defaults it gives an
// option configuration, and how its values accumulate.
type Infer[T, V any] interface {
	Accumulator[T, V]

	Action() core.Action
	Force() bool
	Ctor() string
	Index() (core.Index, bool)
	Style() []core.Style
	IgnoreName() bool
	IgnoreAlias() bool
	IgnoreIndex() bool
	Type() core.TypeTag
	// Tweak rewrites cfg in a type specific way before Fill applies defaults.
	Tweak(cfg *core.Config) error
}

// Defaults provides the base declaration defaults. Implementations embed it
// and override what differs.
type Defaults struct{}

func (Defaults) Action() core.Action          { return core.ActionSet }
func (Defaults) Force() bool                  { return true }
func (Defaults) Ctor() string                 { return core.DefaultCtor }
func (Defaults) Index() (core.Index, bool)    { return core.Index{}, false }
func (Defaults) Style() []core.Style          { return []core.Style{core.StyleArgument} }
func (Defaults) IgnoreName() bool             { return false }
func (Defaults) IgnoreAlias() bool            { return false }
func (Defaults) IgnoreIndex() bool            { return true }
func (Defaults) Tweak(cfg *core.Config) error { return nil }

// Fill completes cfg from inf. The tweak runs first. Ctor, index, type,
// action, style and force are then set only where cfg has no value yet.
//
// The three ignore flags are different: they are always overwritten with
// the type's answer, whatever cfg held before. Callers cannot opt a
// positional out of ignoring its name by presetting the flag.
func Fill[T, V any](inf Infer[T, V], cfg *core.Config) error {
	if err := inf.Tweak(cfg); err != nil {
		return err
	}
	if !cfg.HasCtor() {
		cfg.SetCtor(inf.Ctor())
	}
	if !cfg.HasIndex() {
		if idx, ok := inf.Index(); ok {
			cfg.SetIndex(idx)
		}
	}
	if !cfg.HasType() {
		cfg.SetType(inf.Type())
	}
	if !cfg.HasAction() {
		cfg.SetAction(inf.Action())
	}
	if !cfg.HasStyle() {
		cfg.SetStyle(inf.Style()...)
	}
	if !cfg.HasForce() {
		cfg.SetForce(inf.Force())
	}
	cfg.SetIgnoreName(inf.IgnoreName())
	cfg.SetIgnoreAlias(inf.IgnoreAlias())
	cfg.SetIgnoreIndex(inf.IgnoreIndex())
	return nil
}
