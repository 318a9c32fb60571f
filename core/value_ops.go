// File: value_ops.go
// Role: Arithmetic and coercions over Value (spec §4.1).
// Promotion table:
//   - Float/Int combine as Float (Int+Int stays Int).
//   - Scalar op VecN/Color = VecN/Color (broadcast).
//   - VecN op VecN = VecN (component-wise); Color participates as Vec4.
//   - ListFloat/ListInt op scalar = element-wise list; ListFloat/ListInt op
//     same-length List of the same kind = element-wise.
//   - Everything else (String, Gradient, Matrix4, mismatched shapes, and any
//     arithmetic on ListVec3/ListVec4/ListColor) = Absent.
// Integer division by zero and overflow are implementation-defined per
// spec §9; this implementation returns Absent for int/0 and wraps on
// overflow (Go's native int32 semantics), see SPEC_FULL.md "Open Questions".
package core

import "math"

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opMod
)

// Add returns v + o, or Absent if the combination is not representable.
func (v Value) Add(o Value) Value { return binary(v, o, opAdd) }

// Sub returns v - o, or Absent if the combination is not representable.
func (v Value) Sub(o Value) Value { return binary(v, o, opSub) }

// Mul returns v * o, or Absent if the combination is not representable.
func (v Value) Mul(o Value) Value { return binary(v, o, opMul) }

// Div returns v / o, or Absent if the combination is not representable.
// Float division by zero yields IEEE-754 ±Inf/NaN; integer division by
// zero yields Absent.
func (v Value) Div(o Value) Value { return binary(v, o, opDiv) }

// Mod returns v % o under the same promotion table as Add, or Absent if
// the combination is not representable. Float operands are truncated to
// integers first; a Float divisor that truncates to 0 yields NaN, and
// integer modulo by zero yields Absent.
func (v Value) Mod(o Value) Value { return binary(v, o, opMod) }

// Neg returns -v for numeric/vector/color variants, or Absent otherwise.
func (v Value) Neg() Value {
	switch v.kind {
	case KindFloat:
		return Float(-v.f)
	case KindInt:
		return Int(-v.i)
	case KindVec2:
		return Vec2(-v.vec[0], -v.vec[1])
	case KindVec3:
		return Vec3(-v.vec[0], -v.vec[1], -v.vec[2])
	case KindVec4:
		return Vec4(-v.vec[0], -v.vec[1], -v.vec[2], -v.vec[3])
	case KindColor:
		return Value{kind: KindColor, vec: [4]float32{-v.vec[0], -v.vec[1], -v.vec[2], -v.vec[3]}}
	case KindListFloat:
		out := make([]float32, len(v.listF))
		for i, x := range v.listF {
			out[i] = -x
		}
		return ListFloat(out)
	case KindListInt:
		out := make([]int32, len(v.listI))
		for i, x := range v.listI {
			out[i] = -x
		}
		return ListInt(out)
	default:
		return Absent
	}
}

func applyFloat(a, b float32, op binOp) float32 {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	case opMul:
		return a * b
	case opDiv:
		return a / b
	case opMod:
		if int64(b) == 0 {
			return float32(math.NaN())
		}
		return float32(int64(a) % int64(b))
	}
	return 0
}

func applyInt(a, b int32, op binOp) (int32, bool) {
	switch op {
	case opAdd:
		return a + b, true
	case opSub:
		return a - b, true
	case opMul:
		return a * b, true
	case opDiv:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	case opMod:
		if b == 0 {
			return 0, false
		}
		return a % b, true
	}
	return 0, false
}

// binary implements the promotion table described in this file's header.
func binary(a, b Value, op binOp) Value {
	// Int op Int stays Int (unless division/mod by zero, which is absent).
	if a.kind == KindInt && b.kind == KindInt {
		r, ok := applyInt(a.i, b.i, op)
		if !ok {
			return Absent
		}
		return Int(r)
	}

	// Any numeric scalar combination (Float/Int mix) promotes to Float.
	af, aok := a.scalarFloat()
	bf, bok := b.scalarFloat()
	if aok && bok {
		return Float(applyFloat(af, bf, op))
	}

	// Scalar broadcast into VecN/Color, either operand order.
	if aok && b.isVectorLike() {
		return broadcastScalarVec(af, b, op, true)
	}
	if bok && a.isVectorLike() {
		return broadcastScalarVec(bf, a, op, false)
	}

	// VecN op VecN (including Color, which participates as Vec4).
	if a.isVectorLike() && b.isVectorLike() {
		return vecOpVec(a, b, op)
	}

	// List op scalar = element-wise list.
	if aok && b.isListLike() {
		return listOpScalar(b, af, op, false)
	}
	if bok && a.isListLike() {
		return listOpScalar(a, bf, op, true)
	}

	// List op List of equal length = element-wise.
	if a.isListLike() && b.isListLike() {
		return listOpList(a, b, op)
	}

	return Absent
}

// scalarFloat reports (value, true) if v is Float or Int (widened to float32).
func (v Value) scalarFloat() (float32, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float32(v.i), true
	default:
		return 0, false
	}
}

func (v Value) isVectorLike() bool {
	switch v.kind {
	case KindVec2, KindVec3, KindVec4, KindColor:
		return true
	default:
		return false
	}
}

func (v Value) isListLike() bool {
	switch v.kind {
	case KindListFloat, KindListInt, KindListVec3, KindListVec4, KindListColor:
		return true
	default:
		return false
	}
}

func vecArity(k Kind) int {
	switch k {
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4, KindColor:
		return 4
	default:
		return 0
	}
}

func broadcastScalarVec(scalar float32, vecVal Value, op binOp, scalarFirst bool) Value {
	n := vecArity(vecVal.kind)
	var out [4]float32
	for i := 0; i < n; i++ {
		a, b := scalar, vecVal.vec[i]
		if !scalarFirst {
			a, b = vecVal.vec[i], scalar
		}
		out[i] = applyFloat(a, b, op)
	}
	return Value{kind: vecVal.kind, vec: out}
}

func vecOpVec(a, b Value, op binOp) Value {
	na, nb := vecArity(a.kind), vecArity(b.kind)
	if na != nb {
		return Absent
	}
	// Result carries Color if either operand was Color, else a's own kind.
	resultKind := a.kind
	if a.kind == KindColor || b.kind == KindColor {
		resultKind = KindColor
	}
	var out [4]float32
	for i := 0; i < na; i++ {
		out[i] = applyFloat(a.vec[i], b.vec[i], op)
	}
	return Value{kind: resultKind, vec: out}
}

func listOpScalar(list Value, scalar float32, op binOp, listFirst bool) Value {
	switch list.kind {
	case KindListFloat:
		out := make([]float32, len(list.listF))
		for i, x := range list.listF {
			a, b := x, scalar
			if !listFirst {
				a, b = scalar, x
			}
			out[i] = applyFloat(a, b, op)
		}
		return ListFloat(out)
	case KindListInt:
		si := int32(scalar)
		out := make([]int32, len(list.listI))
		for i, x := range list.listI {
			a, b := x, si
			if !listFirst {
				a, b = si, x
			}
			r, ok := applyInt(a, b, op)
			if !ok {
				return Absent
			}
			out[i] = r
		}
		return ListInt(out)
	default:
		return Absent
	}
}

func listOpList(a, b Value, op binOp) Value {
	if a.kind != b.kind {
		return Absent
	}
	switch a.kind {
	case KindListFloat:
		if len(a.listF) != len(b.listF) {
			return Absent
		}
		out := make([]float32, len(a.listF))
		for i := range a.listF {
			out[i] = applyFloat(a.listF[i], b.listF[i], op)
		}
		return ListFloat(out)
	case KindListInt:
		if len(a.listI) != len(b.listI) {
			return Absent
		}
		out := make([]int32, len(a.listI))
		for i := range a.listI {
			r, ok := applyInt(a.listI[i], b.listI[i], op)
			if !ok {
				return Absent
			}
			out[i] = r
		}
		return ListInt(out)
	default:
		return Absent
	}
}

// --- Coercions (never panic; failure returns ok=false) -----------------

func (v Value) AsFloat() (float32, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float32(v.i), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func (v Value) AsInt() (int32, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		return int32(v.f), true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindFloat:
		return v.f != 0, true
	case KindInt:
		return v.i != 0, true
	default:
		return false, false
	}
}

func (v Value) AsVec2() ([2]float32, bool) {
	switch v.kind {
	case KindVec2, KindVec3, KindVec4, KindColor:
		return [2]float32{v.vec[0], v.vec[1]}, true
	default:
		return [2]float32{}, false
	}
}

func (v Value) AsVec3() ([3]float32, bool) {
	switch v.kind {
	case KindVec3, KindVec4, KindColor:
		return [3]float32{v.vec[0], v.vec[1], v.vec[2]}, true
	default:
		return [3]float32{}, false
	}
}

func (v Value) AsVec4() ([4]float32, bool) {
	switch v.kind {
	case KindVec4, KindColor:
		return v.vec, true
	default:
		return [4]float32{}, false
	}
}

func (v Value) AsColor() (Color, bool) {
	switch v.kind {
	case KindColor, KindVec4:
		return Color{v.vec[0], v.vec[1], v.vec[2], v.vec[3]}, true
	default:
		return Color{}, false
	}
}

func (v Value) AsString() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}
