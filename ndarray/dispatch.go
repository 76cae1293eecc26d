// SPDX-License-Identifier: MIT

// Package ndarray - numeric-library dispatch protocol.
//
// Purpose:
//   - Let array-like types built on top of Array (quantities with uncertainty
//     and unit) take part in the package-level functions without the caller
//     knowing which concrete type it holds.
//
// Protocol:
//   - Apply(fn): shape/selection family. The implementation runs fn on each
//     Array it owns and rebuilds itself from the results.
//   - Join(other, fn): combining family (append, insert, concatenate). The
//     implementation reconciles other (e.g. unit conversion) before running fn
//     pairwise on its arrays.
//   - UFunc(name, params...): element-wise family. Unknown names must return
//     an error wrapping ErrNotImplemented, never a degraded result.
//
// AI-Hints:
//   - *Array implements Operand[*Array], so every function here also works on plain arrays.
//   - Names with no implementation (cbrt, atleast_1d, ...) go through Call and
//     surface ErrNotImplemented from the operand.

package ndarray

// Operand is an array-like value that supports the dispatch protocol.
type Operand[T any] interface {
	Shape() []int
	Size() int
	Apply(fn func(*Array) (*Array, error)) (T, error)
	Join(other T, fn func(a, b *Array) (*Array, error)) (T, error)
	UFunc(name UFunc, params ...float64) (T, error)
}

var _ Operand[*Array] = (*Array)(nil)

// Apply returns fn(a).
func (a *Array) Apply(fn func(*Array) (*Array, error)) (*Array, error) {
	return fn(a)
}

// Join returns fn(a, other).
func (a *Array) Join(other *Array, fn func(x, y *Array) (*Array, error)) (*Array, error) {
	return fn(a, other)
}

// ---------- shape & size ----------

// ShapeOf returns the shape of any operand.
func ShapeOf[T Operand[T]](v T) []int { return v.Shape() }

// SizeOf returns the element count of any operand.
func SizeOf[T Operand[T]](v T) int { return v.Size() }

// ---------- family 1: shape and selection ----------

func Reshape[T Operand[T]](v T, shape ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Reshape(shape...) })
}

func Ravel[T Operand[T]](v T) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Ravel(), nil })
}

func Transpose[T Operand[T]](v T, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Transpose(axes...) })
}

func SwapAxes[T Operand[T]](v T, a1, a2 int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.SwapAxes(a1, a2) })
}

func MoveAxis[T Operand[T]](v T, source, destination []int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.MoveAxis(source, destination) })
}

func RollAxis[T Operand[T]](v T, axis, start int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.RollAxis(axis, start) })
}

func Flip[T Operand[T]](v T, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Flip(axes...) })
}

func FlipLR[T Operand[T]](v T) (T, error) {
	return v.Apply((*Array).FlipLR)
}

func FlipUD[T Operand[T]](v T) (T, error) {
	return v.Apply((*Array).FlipUD)
}

func Roll[T Operand[T]](v T, shift int, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Roll(shift, axes...) })
}

func Rot90[T Operand[T]](v T, k, a0, a1 int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Rot90(k, a0, a1) })
}

func Tile[T Operand[T]](v T, reps ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Tile(reps...) })
}

func Repeat[T Operand[T]](v T, n int, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Repeat(n, axes...) })
}

func Take[T Operand[T]](v T, indices []int, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Take(indices, axes...) })
}

func Delete[T Operand[T]](v T, indices []int, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Delete(indices, axes...) })
}

func Squeeze[T Operand[T]](v T, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Squeeze(axes...) })
}

func ExpandDims[T Operand[T]](v T, axes ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.ExpandDims(axes...) })
}

func Resize[T Operand[T]](v T, shape ...int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Resize(shape...) })
}

// Round rounds every owned array half-to-even with the same decimals.
func Round[T Operand[T]](v T, decimals int) (T, error) {
	return v.Apply(func(a *Array) (*Array, error) { return a.Round(decimals), nil })
}

// Around is an alias of Round.
func Around[T Operand[T]](v T, decimals int) (T, error) { return Round(v, decimals) }

// ---------- family 1b: combining ----------

func Append[T Operand[T]](v, values T, axes ...int) (T, error) {
	return v.Join(values, func(a, b *Array) (*Array, error) { return a.Append(b, axes...) })
}

func Insert[T Operand[T]](v T, index int, values T, axes ...int) (T, error) {
	return v.Join(values, func(a, b *Array) (*Array, error) { return a.Insert(index, b, axes...) })
}

// Concat joins operands along axis; every later operand is reconciled with
// the first one by its Join implementation.
func Concat[T Operand[T]](vs []T, axis int) (T, error) {
	var zero T
	if len(vs) == 0 {
		return zero, arrayErrorf(ctxConcatenate, ErrBadParam)
	}
	out := vs[0]
	if len(vs) == 1 {
		return out.Apply(func(a *Array) (*Array, error) { return Concatenate([]*Array{a}, axis) })
	}
	for _, next := range vs[1:] {
		var err error
		out, err = out.Join(next, func(a, b *Array) (*Array, error) { return Concatenate([]*Array{a, b}, axis) })
		if err != nil {
			return zero, err
		}
	}

	return out, nil
}

// ---------- family 2: element-wise ----------

// Call applies the named ufunc; unknown names yield ErrNotImplemented.
func Call[T Operand[T]](v T, name UFunc, params ...float64) (T, error) {
	return v.UFunc(name, params...)
}

func Sin[T Operand[T]](v T) (T, error)      { return v.UFunc(UFuncSin) }
func Cos[T Operand[T]](v T) (T, error)      { return v.UFunc(UFuncCos) }
func Tan[T Operand[T]](v T) (T, error)      { return v.UFunc(UFuncTan) }
func ArcSin[T Operand[T]](v T) (T, error)   { return v.UFunc(UFuncArcSin) }
func ArcCos[T Operand[T]](v T) (T, error)   { return v.UFunc(UFuncArcCos) }
func ArcTan[T Operand[T]](v T) (T, error)   { return v.UFunc(UFuncArcTan) }
func Sinh[T Operand[T]](v T) (T, error)     { return v.UFunc(UFuncSinh) }
func Cosh[T Operand[T]](v T) (T, error)     { return v.UFunc(UFuncCosh) }
func Tanh[T Operand[T]](v T) (T, error)     { return v.UFunc(UFuncTanh) }
func ArcSinh[T Operand[T]](v T) (T, error)  { return v.UFunc(UFuncArcSinh) }
func ArcCosh[T Operand[T]](v T) (T, error)  { return v.UFunc(UFuncArcCosh) }
func ArcTanh[T Operand[T]](v T) (T, error)  { return v.UFunc(UFuncArcTanh) }
func Radians[T Operand[T]](v T) (T, error)  { return v.UFunc(UFuncRadians) }
func Deg2Rad[T Operand[T]](v T) (T, error)  { return v.UFunc(UFuncDeg2Rad) }
func Degrees[T Operand[T]](v T) (T, error)  { return v.UFunc(UFuncDegrees) }
func Rad2Deg[T Operand[T]](v T) (T, error)  { return v.UFunc(UFuncRad2Deg) }
func Negative[T Operand[T]](v T) (T, error) { return v.UFunc(UFuncNegative) }
func Absolute[T Operand[T]](v T) (T, error) { return v.UFunc(UFuncAbsolute) }
func Square[T Operand[T]](v T) (T, error)   { return v.UFunc(UFuncSquare) }
func Sqrt[T Operand[T]](v T) (T, error)     { return v.UFunc(UFuncSqrt) }
func Exp[T Operand[T]](v T) (T, error)      { return v.UFunc(UFuncExp) }
func Log[T Operand[T]](v T) (T, error)      { return v.UFunc(UFuncLog) }
func Log10[T Operand[T]](v T) (T, error)    { return v.UFunc(UFuncLog10) }
func Log2[T Operand[T]](v T) (T, error)     { return v.UFunc(UFuncLog2) }

// Clip limits values to [lo, hi].
func Clip[T Operand[T]](v T, lo, hi float64) (T, error) { return v.UFunc(UFuncClip, lo, hi) }
