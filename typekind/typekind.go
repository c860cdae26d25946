package typekind

import "unsafe"

// Kind identifies an element type from the closed registry.
type Kind int

const (
	Invalid Kind = iota
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	CStr
	Char
	Bool
	Size
	Hex
	Oct
	Bin
	Datetime
	Duration
	Any
	Null
)

// Native widths. Strings are compared through their headers, so a cstr
// element is a full Go string header, not a bare pointer.
var (
	cstrWidth = int(unsafe.Sizeof(""))
	sizeWidth = int(unsafe.Sizeof(uint(0)))
)

var kindNames = map[string]Kind{
	"i8":       I8,
	"i16":      I16,
	"i32":      I32,
	"i64":      I64,
	"u8":       U8,
	"u16":      U16,
	"u32":      U32,
	"u64":      U64,
	"f32":      F32,
	"f64":      F64,
	"cstr":     CStr,
	"char":     Char,
	"bool":     Bool,
	"size":     Size,
	"hex":      Hex,
	"oct":      Oct,
	"bin":      Bin,
	"datetime": Datetime,
	"duration": Duration,
	"any":      Any,
	"null":     Null,
}

// Parse resolves a type identifier string to its Kind.
// Empty or unrecognized identifiers resolve to Invalid.
func Parse(typeID string) Kind {
	return kindNames[typeID]
}

func (k Kind) String() string {
	switch k {
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case CStr:
		return "cstr"
	case Char:
		return "char"
	case Bool:
		return "bool"
	case Size:
		return "size"
	case Hex:
		return "hex"
	case Oct:
		return "oct"
	case Bin:
		return "bin"
	case Datetime:
		return "datetime"
	case Duration:
		return "duration"
	case Any:
		return "any"
	case Null:
		return "null"
	default:
		return "invalid"
	}
}

// Width returns the fixed element size in bytes, or 0 for kinds without
// a concrete representation (Invalid, Any, Null).
func (k Kind) Width() int {
	switch k {
	case I8, U8, Char, Bool:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32:
		return 4
	case I64, U64, F64:
		return 8
	case Hex, Oct, Bin, Datetime, Duration:
		// Integer aliases reuse the u64 representation.
		return 8
	case Size:
		return sizeWidth
	case CStr:
		return cstrWidth
	default:
		return 0
	}
}

// Supported reports whether the kind has a concrete element representation.
func (k Kind) Supported() bool {
	return k.Width() != 0
}
