package core

// TypeTag identifies the raw value type an option produces. The parser
// converts every matched token according to the tag of its option, and the
// binding layer downcasts the converted value to the type it declared.
type TypeTag int

const (
	TypeUnknown TypeTag = iota
	TypeBool
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeString
	TypePath
	TypeStdin
	TypeStop
	TypeCmd
)

var typeNames = map[TypeTag]string{
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint:    "uint",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeString:  "string",
	TypePath:    "path",
	TypeStdin:   "stdin",
	TypeStop:    "stop",
	TypeCmd:     "cmd",
}

func (t TypeTag) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// TakesValue reports whether an option of this type consumes a value token.
func (t TypeTag) TakesValue() bool {
	switch t {
	case TypeBool, TypeStdin, TypeStop, TypeCmd, TypeUnknown:
		return false
	}
	return true
}
