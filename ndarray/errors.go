// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No operation panics on
// user-triggered conditions.

package ndarray

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "ndarray: ..." for consistency. Wrap with
// arrayErrorf at the detection site; callers match with errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// extent, more than one inferred -1, or -1 with a zero-sized remainder).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch indicates operands or data whose shapes cannot be
	// reconciled (wrong data length, non-broadcastable shapes, concatenation
	// of arrays that differ outside the join axis).
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrAxis indicates an axis argument outside [-ndim, ndim), a repeated
	// axis, or an axis whose extent forbids the operation (squeeze of a
	// non-unit axis).
	ErrAxis = errors.New("ndarray: invalid axis")

	// ErrOutOfRange indicates an element index outside valid bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrUnsupportedType is returned by From for inputs it cannot convert.
	ErrUnsupportedType = errors.New("ndarray: unsupported input type")

	// ErrNotImplemented marks a function that has no implementation for the
	// operand type. Callers never get a silently degraded result instead.
	ErrNotImplemented = errors.New("ndarray: function not implemented for this type")

	// ErrBadParam indicates an invalid scalar parameter (negative repeat
	// count, zero slice step, NaN clip bound, wrong parameter count).
	ErrBadParam = errors.New("ndarray: invalid parameter")
)

// Operation tags used in error wrappers.
const (
	ctxNew         = "New"
	ctxFrom        = "From"
	ctxAt          = "At"
	ctxItem        = "Item"
	ctxReshape     = "Reshape"
	ctxTranspose   = "Transpose"
	ctxMoveAxis    = "MoveAxis"
	ctxRollAxis    = "RollAxis"
	ctxExpandDims  = "ExpandDims"
	ctxSqueeze     = "Squeeze"
	ctxResize      = "Resize"
	ctxFlip        = "Flip"
	ctxRoll        = "Roll"
	ctxRot90       = "Rot90"
	ctxTile        = "Tile"
	ctxRepeat      = "Repeat"
	ctxTake        = "Take"
	ctxDelete      = "Delete"
	ctxInsert      = "Insert"
	ctxConcatenate = "Concatenate"
	ctxIndex       = "Index"
	ctxSlice       = "SliceAxis"
	ctxBroadcast   = "Broadcast"
	ctxClip        = "Clip"
	ctxUFunc       = "UFunc"
)

// arrayErrorf wraps err with the operation tag, preserving the sentinel.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
