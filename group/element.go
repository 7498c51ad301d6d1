// Package group defines the generic constraint satisfied by every algebraic
// type in package curve (Scalar, G1, G2, GT). It is the Go rendering of the
// `MulAssign`-bound generic traits that original_source's Rust crates use to
// express "bilinearity is the only correctness requirement" (spec.md §4.1):
// GIPA, TIPA, and the commitment/inner-product abstractions are written once
// against Element[T] and monomorphized per concrete instantiation.
package group

import "github.com/tipa-crypto/go-tipa/curve"

// Element is satisfied by any abelian group with scalar action by
// curve.Scalar: curve.Scalar itself (field addition/multiplication), and
// curve.G1, curve.G2, curve.GT (group addition/scalar-multiplication,
// written additively even where the underlying group, like GT, is
// multiplicative).
type Element[T any] interface {
	Add(T) T
	Neg() T
	ScalarMul(curve.Scalar) T
	Equal(T) bool
	IsIdentity() bool
}

// Sum folds a slice of group elements with Add, starting from zero.
func Sum[T Element[T]](zero T, xs []T) T {
	acc := zero
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}
