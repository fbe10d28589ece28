package utils

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integer is any integer element type a host buffer may carry (int32 for the
// usual mesh framework arrays, int/int64 elsewhere).
type Integer interface {
	constraints.Integer
}

// Index is a list of zero based positions, most often a permutation.
type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRangeOffset(rmin, rmax int) (r Index) {
	// Input range is "1 based" and converted to zero based index
	return NewRange(rmin-1, rmax-1)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// NewIdentity returns the identity permutation of length N.
func NewIdentity(N int) (r Index) {
	return NewRange(0, N-1)
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for j, val := range J {
		r[j] = I[val]
	}
	return
}

func (I Index) Apply(f func(val int) int) (r Index) {
	r = make(Index, len(I))
	for i, val := range I {
		r[i] = f(val)
	}
	return
}

// IsPermutation reports whether I is a bijection on [0, len(I)).
func (I Index) IsPermutation() bool {
	seen := make([]bool, len(I))
	for _, val := range I {
		if val < 0 || val >= len(I) || seen[val] {
			return false
		}
		seen[val] = true
	}
	return true
}

// Inverse returns J such that J[I[i]] = i. I must be a permutation.
func (I Index) Inverse() (J Index) {
	J = make(Index, len(I))
	for i, val := range I {
		J[val] = i
	}
	return
}

// Permute returns a new slice with result[i] = values[order[i]].
func Permute[T any](values []T, order Index) (r []T) {
	r = make([]T, len(order))
	for i, src := range order {
		r[i] = values[src]
	}
	return
}

// PermuteInPlace reorders every array by the same permutation so that they
// stay positionally aligned. Nothing is written unless all arrays have the
// permutation's length and order is a permutation.
func PermuteInPlace[T any](order Index, arrays ...[]T) (err error) {
	if !order.IsPermutation() {
		return NewPreconditionError("permute", "order is not a permutation of [0,%d)", len(order))
	}
	for n, a := range arrays {
		if len(a) != len(order) {
			return NewPreconditionError("permute",
				"array %d has length %d, permutation has length %d", n, len(a), len(order))
		}
	}
	for _, a := range arrays {
		copy(a, Permute(a, order))
	}
	return
}

// CheckLength validates the length of a caller supplied buffer.
func CheckLength(op, name string, got, want int) (err error) {
	if got != want {
		err = NewPreconditionError(op, "len(%s) = %d, expected %d", name, got, want)
	}
	return
}

// ToZeroBased converts a 1 based id from the host mesh framework into a
// position in [0, n). Every 1 based to 0 based conversion goes through here.
func ToZeroBased[T Integer](id T, n int) (pos int, err error) {
	pos = int(id) - 1
	if pos < 0 || pos >= n {
		err = fmt.Errorf("id %d out of range [1,%d]", int64(id), n)
	}
	return
}

// FromZeroBased is the inverse of ToZeroBased.
func FromZeroBased[T Integer](pos int) T {
	return T(pos + 1)
}
