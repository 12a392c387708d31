package core

import (
	"io"
	"strconv"

	"github.com/chriso345/soya/errors"
)

// convert turns the raw token of an occurrence into the value its type tag
// promises. Handlers downcast the result to the same Go type.
func convert(opt *Opt, raw string, stdin io.Reader) (any, error) {
	v, err := convertTag(opt.Type(), raw, stdin)
	if err != nil {
		return nil, errors.NewConversion(opt.Name(), raw, err)
	}
	return v, nil
}

func convertTag(tag TypeTag, raw string, stdin io.Reader) (any, error) {
	switch tag {
	case TypeBool:
		return strconv.ParseBool(raw)
	case TypeCmd:
		return true, nil
	case TypeStdin:
		return Stdin{Reader: stdin}, nil
	case TypeStop:
		return Stop{}, nil
	case TypeString, TypePath:
		return raw, nil
	case TypeInt:
		v, err := strconv.ParseInt(raw, 10, strconv.IntSize)
		return int(v), err
	case TypeInt8:
		v, err := strconv.ParseInt(raw, 10, 8)
		return int8(v), err
	case TypeInt16:
		v, err := strconv.ParseInt(raw, 10, 16)
		return int16(v), err
	case TypeInt32:
		v, err := strconv.ParseInt(raw, 10, 32)
		return int32(v), err
	case TypeInt64:
		return strconv.ParseInt(raw, 10, 64)
	case TypeUint:
		v, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		return uint(v), err
	case TypeUint8:
		v, err := strconv.ParseUint(raw, 10, 8)
		return uint8(v), err
	case TypeUint16:
		v, err := strconv.ParseUint(raw, 10, 16)
		return uint16(v), err
	case TypeUint32:
		v, err := strconv.ParseUint(raw, 10, 32)
		return uint32(v), err
	case TypeUint64:
		return strconv.ParseUint(raw, 10, 64)
	case TypeFloat32:
		v, err := strconv.ParseFloat(raw, 32)
		return float32(v), err
	case TypeFloat64:
		return strconv.ParseFloat(raw, 64)
	}
	return nil, errors.NewParseError("no conversion for type " + tag.String())
}
