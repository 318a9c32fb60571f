// File: value.go
// Role: The tagged-variant value lattice (spec component A).
// Policy:
//   - Every variant is clonable and equality-comparable, strings/lists included.
//   - Coercions never panic; failure returns the absent Value (IsAbsent() == true).
//   - Arithmetic lives in value_ops.go; this file only owns representation.

package core

import "fmt"

// Kind tags the active variant of a Value.
type Kind int

// Variant tags for Value. KindAbsent is the zero value so a zero Value is
// "not representable" rather than an accidental Float(0).
const (
	KindAbsent Kind = iota
	KindFloat
	KindInt
	KindBool
	KindString
	KindVec2
	KindVec3
	KindVec4
	KindColor
	KindMatrix4
	KindGradient
	KindListFloat
	KindListInt
	KindListVec3
	KindListVec4
	KindListColor
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "Absent"
	case KindFloat:
		return "Float"
	case KindInt:
		return "Int"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindVec2:
		return "Vec2"
	case KindVec3:
		return "Vec3"
	case KindVec4:
		return "Vec4"
	case KindColor:
		return "Color"
	case KindMatrix4:
		return "Matrix4"
	case KindGradient:
		return "Gradient"
	case KindListFloat:
		return "ListFloat"
	case KindListInt:
		return "ListInt"
	case KindListVec3:
		return "ListVec3"
	case KindListVec4:
		return "ListVec4"
	case KindListColor:
		return "ListColor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeCategory groups Kind values for auto-conversion and port-constraint
// purposes (spec §3 ValueType).
type TypeCategory int

const (
	CategoryNone TypeCategory = iota
	CategoryScalar
	CategoryVector
	CategoryColor
	CategoryList
	CategoryMatrix
	CategoryString
	CategoryTrigger
)

// Category classifies k for the purposes of auto-conversion grouping.
func (k Kind) Category() TypeCategory {
	switch k {
	case KindFloat, KindInt, KindBool:
		return CategoryScalar
	case KindVec2, KindVec3, KindVec4:
		return CategoryVector
	case KindColor:
		return CategoryColor
	case KindMatrix4:
		return CategoryMatrix
	case KindGradient:
		return CategoryVector
	case KindString:
		return CategoryString
	case KindListFloat, KindListInt, KindListVec3, KindListVec4, KindListColor:
		return CategoryList
	default:
		return CategoryNone
	}
}

// ValueType is the declared type of a port: a Kind tag. Ports that accept
// more than one Kind use TypeConstraint (port.go), not ValueType.
type ValueType = Kind

// Color is an RGBA color that participates in arithmetic as a Vec4 (spec §3).
type Color struct {
	R, G, B, A float32
}

// GradientStop is one ordered stop of a Gradient; Position must lie in [0,1]
// but this type does not enforce it (callers validate). The core has no
// gradient evaluation helpers.
type GradientStop struct {
	Position float32
	Color    Color
}

// Gradient is an ordered list of color stops.
type Gradient struct {
	Stops []GradientStop
}

// Clone returns a deep copy of g.
func (g Gradient) Clone() Gradient {
	out := Gradient{Stops: make([]GradientStop, len(g.Stops))}
	copy(out.Stops, g.Stops)
	return out
}

// Equal reports whether g and o have identical stops in the same order.
func (g Gradient) Equal(o Gradient) bool {
	if len(g.Stops) != len(o.Stops) {
		return false
	}
	for i := range g.Stops {
		if g.Stops[i] != o.Stops[i] {
			return false
		}
	}
	return true
}

// Matrix4 is a column-major 4x4 matrix: Cols[c][r].
type Matrix4 struct {
	Cols [4][4]float32
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		m.Cols[i][i] = 1
	}
	return m
}

// Value is a tagged variant over Float/Int/Bool/String/Vec2-4/Color/Matrix4/
// Gradient and homogeneous lists of Float/Int/Vec3/Vec4/Color (spec §3).
//
// The zero Value is KindAbsent ("not representable"); arithmetic and
// coercions on it are always no-ops that themselves return absent, so
// propagating a missing upstream value never panics.
type Value struct {
	kind Kind

	f   float32
	i   int32
	b   bool
	s   string
	vec [4]float32 // used by Vec2 (0:1), Vec3 (0:2), Vec4/Color (0:3)

	mat      *Matrix4
	gradient *Gradient

	listF     []float32
	listI     []int32
	listVec3  [][3]float32
	listVec4  [][4]float32
	listColor []Color
}

// Absent is the canonical "not representable" Value.
var Absent = Value{kind: KindAbsent}

// Type reports the variant tag currently held by v.
func (v Value) Type() Kind { return v.kind }

// IsAbsent reports whether v carries no representable value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// --- Constructors -----------------------------------------------------

func Float(f float32) Value   { return Value{kind: KindFloat, f: f} }
func Int(i int32) Value       { return Value{kind: KindInt, i: i} }
func Bool(b bool) Value       { return Value{kind: KindBool, b: b} }
func String(s string) Value   { return Value{kind: KindString, s: s} }

func Vec2(x, y float32) Value {
	return Value{kind: KindVec2, vec: [4]float32{x, y, 0, 0}}
}

func Vec3(x, y, z float32) Value {
	return Value{kind: KindVec3, vec: [4]float32{x, y, z, 0}}
}

func Vec4(x, y, z, w float32) Value {
	return Value{kind: KindVec4, vec: [4]float32{x, y, z, w}}
}

func NewColor(r, g, b, a float32) Value {
	return Value{kind: KindColor, vec: [4]float32{r, g, b, a}}
}

func NewMatrix4(m Matrix4) Value {
	cp := m
	return Value{kind: KindMatrix4, mat: &cp}
}

func NewGradient(g Gradient) Value {
	cp := g.Clone()
	return Value{kind: KindGradient, gradient: &cp}
}

func ListFloat(xs []float32) Value {
	cp := append([]float32(nil), xs...)
	return Value{kind: KindListFloat, listF: cp}
}

func ListInt(xs []int32) Value {
	cp := append([]int32(nil), xs...)
	return Value{kind: KindListInt, listI: cp}
}

func ListVec3(xs [][3]float32) Value {
	cp := append([][3]float32(nil), xs...)
	return Value{kind: KindListVec3, listVec3: cp}
}

func ListVec4(xs [][4]float32) Value {
	cp := append([][4]float32(nil), xs...)
	return Value{kind: KindListVec4, listVec4: cp}
}

func ListColor(xs []Color) Value {
	cp := append([]Color(nil), xs...)
	return Value{kind: KindListColor, listColor: cp}
}

// Zero returns the canonical zero Value for k, used when an evaluation
// fault forces an output back to its declared type (spec §7).
func Zero(k Kind) Value {
	switch k {
	case KindFloat:
		return Float(0)
	case KindInt:
		return Int(0)
	case KindBool:
		return Bool(false)
	case KindString:
		return String("")
	case KindVec2:
		return Vec2(0, 0)
	case KindVec3:
		return Vec3(0, 0, 0)
	case KindVec4:
		return Vec4(0, 0, 0, 0)
	case KindColor:
		return NewColor(0, 0, 0, 0)
	case KindMatrix4:
		return NewMatrix4(Identity4())
	case KindGradient:
		return NewGradient(Gradient{})
	case KindListFloat:
		return ListFloat(nil)
	case KindListInt:
		return ListInt(nil)
	case KindListVec3:
		return ListVec3(nil)
	case KindListVec4:
		return ListVec4(nil)
	case KindListColor:
		return ListColor(nil)
	default:
		return Absent
	}
}

// Clone returns a value with independent backing storage for reference-typed
// variants (lists, gradient, matrix); scalar variants are already copies.
func (v Value) Clone() Value {
	switch v.kind {
	case KindMatrix4:
		cp := *v.mat
		return Value{kind: KindMatrix4, mat: &cp}
	case KindGradient:
		cp := v.gradient.Clone()
		return Value{kind: KindGradient, gradient: &cp}
	case KindListFloat:
		return ListFloat(v.listF)
	case KindListInt:
		return ListInt(v.listI)
	case KindListVec3:
		return ListVec3(v.listVec3)
	case KindListVec4:
		return ListVec4(v.listVec4)
	case KindListColor:
		return ListColor(v.listColor)
	default:
		return v
	}
}

// Equal reports deep equality, including strings and lists.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindFloat:
		return v.f == o.f
	case KindInt:
		return v.i == o.i
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindVec2:
		return v.vec[0] == o.vec[0] && v.vec[1] == o.vec[1]
	case KindVec3:
		return v.vec[0] == o.vec[0] && v.vec[1] == o.vec[1] && v.vec[2] == o.vec[2]
	case KindVec4, KindColor:
		return v.vec == o.vec
	case KindMatrix4:
		return *v.mat == *o.mat
	case KindGradient:
		return v.gradient.Equal(*o.gradient)
	case KindListFloat:
		return equalSlice(v.listF, o.listF)
	case KindListInt:
		return equalSlice(v.listI, o.listI)
	case KindListVec3:
		return equalSlice(v.listVec3, o.listVec3)
	case KindListVec4:
		return equalSlice(v.listVec4, o.listVec4)
	case KindListColor:
		return equalSlice(v.listColor, o.listColor)
	default:
		return false
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindFloat:
		return fmt.Sprintf("Float(%v)", v.f)
	case KindInt:
		return fmt.Sprintf("Int(%v)", v.i)
	case KindBool:
		return fmt.Sprintf("Bool(%v)", v.b)
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindVec2:
		return fmt.Sprintf("Vec2(%v,%v)", v.vec[0], v.vec[1])
	case KindVec3:
		return fmt.Sprintf("Vec3(%v,%v,%v)", v.vec[0], v.vec[1], v.vec[2])
	case KindVec4:
		return fmt.Sprintf("Vec4(%v,%v,%v,%v)", v.vec[0], v.vec[1], v.vec[2], v.vec[3])
	case KindColor:
		return fmt.Sprintf("Color(%v,%v,%v,%v)", v.vec[0], v.vec[1], v.vec[2], v.vec[3])
	default:
		return v.kind.String()
	}
}
