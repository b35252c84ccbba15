package primitive

import (
	"reflect"
	"time"
)

// ExampleString is the canonical example for string-kinded values.
const ExampleString = "test"

// Epoch is the canonical example for time.Time values.
var Epoch = time.Unix(0, 0).UTC()

// Example returns the canonical example value for a kind: true for booleans,
// zero of the exact type for numbers and durations, ExampleString for strings
// and Epoch for times. KindPrimitiveEnum and invalid kinds return nil, use
// ExampleFor instead.
func Example(k KindEnum) any {
	switch k {
	default:
		return nil
	case KindInt:
		return int(0)
	case KindInt8:
		return int8(0)
	case KindInt16:
		return int16(0)
	case KindInt32:
		return int32(0)
	case KindInt64:
		return int64(0)
	case KindUint:
		return uint(0)
	case KindUint8:
		return uint8(0)
	case KindUint16:
		return uint16(0)
	case KindUint32:
		return uint32(0)
	case KindUint64:
		return uint64(0)
	case KindFloat32:
		return float32(0)
	case KindFloat64:
		return float64(0)
	case KindBool:
		return true
	case KindString:
		return ExampleString
	case KindTime:
		return Epoch
	case KindDuration:
		return time.Duration(0)
	}
}

// ExampleFor returns an example value of exactly rtype. Named types over a
// basic kind (type Status string) get the basic example converted to rtype.
func ExampleFor(rtype reflect.Type) (reflect.Value, bool) {
	kind := FromReflectType(rtype)
	switch kind {
	case 0:
		return reflect.Value{}, false
	case KindPrimitiveEnum:
		base := BasicType(rtype.Kind())
		return reflect.ValueOf(Example(FromReflectType(base))).Convert(rtype), true
	default:
		return reflect.ValueOf(Example(kind)), true
	}
}
