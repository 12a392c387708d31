package infer

import "github.com/chriso345/soya/core"

// scalar is the implementation shared by plain value types: the raw value
// is the field value, and every occurrence overwrites the previous one.
type scalar[T any] struct {
	Defaults
	tag core.TypeTag
}

func (s scalar[T]) Type() core.TypeTag { return s.tag }

func (scalar[T]) New() (T, bool) {
	var zero T
	return zero, false
}

func (scalar[T]) Map(val T, err error) (T, error) { return val, err }

func (scalar[T]) Update(acc *T, val T, err error) error {
	if err != nil {
		return err
	}
	*acc = val
	return nil
}

func Int() Infer[int, int]             { return scalar[int]{tag: core.TypeInt} }
func Int8() Infer[int8, int8]          { return scalar[int8]{tag: core.TypeInt8} }
func Int16() Infer[int16, int16]       { return scalar[int16]{tag: core.TypeInt16} }
func Int32() Infer[int32, int32]       { return scalar[int32]{tag: core.TypeInt32} }
func Int64() Infer[int64, int64]       { return scalar[int64]{tag: core.TypeInt64} }
func Uint() Infer[uint, uint]          { return scalar[uint]{tag: core.TypeUint} }
func Uint8() Infer[uint8, uint8]       { return scalar[uint8]{tag: core.TypeUint8} }
func Uint16() Infer[uint16, uint16]    { return scalar[uint16]{tag: core.TypeUint16} }
func Uint32() Infer[uint32, uint32]    { return scalar[uint32]{tag: core.TypeUint32} }
func Uint64() Infer[uint64, uint64]    { return scalar[uint64]{tag: core.TypeUint64} }
func Float32() Infer[float32, float32] { return scalar[float32]{tag: core.TypeFloat32} }
func Float64() Infer[float64, float64] { return scalar[float64]{tag: core.TypeFloat64} }
func String() Infer[string, string]    { return scalar[string]{tag: core.TypeString} }

// Path is a string naming a filesystem path.
func Path() Infer[string, string] { return scalar[string]{tag: core.TypePath} }

type boolean struct {
	scalar[bool]
}

// Bool is a toggle: optional, false until matched, usable as `--flag` or
// inside a combined group such as `-abc`.
func Bool() Infer[bool, bool] { return boolean{scalar[bool]{tag: core.TypeBool}} }

func (boolean) Force() bool { return false }

func (boolean) Style() []core.Style {
	return []core.Style{core.StyleCombined, core.StyleBoolean}
}

func (boolean) New() (bool, bool) { return false, true }
