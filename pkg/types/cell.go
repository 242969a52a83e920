package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CellKind identifies the scalar type held by a Cell
type CellKind int

const (
	// CellNull is an empty workbook cell
	CellNull CellKind = iota
	// CellString holds text
	CellString
	// CellFloat holds a number; workbooks store every number as a float
	CellFloat
	// CellBool holds a boolean
	CellBool
)

// String returns the name of the kind
func (k CellKind) String() string {
	switch k {
	case CellNull:
		return "null"
	case CellString:
		return "string"
	case CellFloat:
		return "float"
	case CellBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Cell is a single scalar value read from a workbook table
type Cell struct {
	Kind CellKind `json:"kind" yaml:"kind"`
	Str  string   `json:"str,omitempty" yaml:"str,omitempty"`
	Num  float64  `json:"num,omitempty" yaml:"num,omitempty"`
	Bool bool     `json:"bool,omitempty" yaml:"bool,omitempty"`
}

// Null returns an empty cell
func Null() Cell { return Cell{Kind: CellNull} }

// Text returns a string cell
func Text(s string) Cell { return Cell{Kind: CellString, Str: s} }

// Float returns a numeric cell
func Float(f float64) Cell { return Cell{Kind: CellFloat, Num: f} }

// Boolean returns a boolean cell
func Boolean(b bool) Cell { return Cell{Kind: CellBool, Bool: b} }

// IsNull reports whether the cell is empty
func (c Cell) IsNull() bool {
	return c.Kind == CellNull
}

// Truthy reports whether the cell counts as a present value.
// Empty text, zero and false are not.
func (c Cell) Truthy() bool {
	switch c.Kind {
	case CellString:
		return c.Str != ""
	case CellFloat:
		return c.Num != 0
	case CellBool:
		return c.Bool
	default:
		return false
	}
}

// String renders the cell the way it is written into a settings file.
// Integral numbers drop the fraction so a numeric relay ID of 101 renders as "101".
func (c Cell) String() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellFloat:
		return formatNumber(c.Num)
	case CellBool:
		if c.Bool {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Equal compares two cells. Null equals Null; booleans compare as 0/1
// against numbers.
func (c Cell) Equal(other Cell) bool {
	if c.Kind == CellNull || other.Kind == CellNull {
		return c.Kind == other.Kind
	}
	if c.Kind == CellString || other.Kind == CellString {
		return c.Kind == other.Kind && c.Str == other.Str
	}
	return c.number() == other.number()
}

func (c Cell) number() float64 {
	if c.Kind == CellBool {
		if c.Bool {
			return 1
		}
		return 0
	}
	return c.Num
}

// Token returns the cell as a class token: stringified, spaces removed and
// cut at the first period ("L2.1" and 2.0 become "L2" and "2").
func (c Cell) Token() string {
	return StripQualifier(strings.ReplaceAll(c.String(), " ", ""))
}

// StripQualifier removes everything from the first period on
func StripQualifier(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// value returns the cell as a plain Go scalar, nil for null
func (c Cell) value() interface{} {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellFloat:
		return c.Num
	case CellBool:
		return c.Bool
	default:
		return nil
	}
}

// MarshalJSON encodes the cell as its bare scalar
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value())
}

// MarshalYAML encodes the cell as its bare scalar
func (c Cell) MarshalYAML() (interface{}, error) {
	return c.value(), nil
}
