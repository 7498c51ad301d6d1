// Package polycommit implements the polynomial-commitment application
// (spec.md §4.6, component C8): bivariate and univariate polynomial
// commitments via a "square-root trick" decomposition, opened by combining
// a TIPA proof (for the row dimension) with a plain KZG opening (for the
// column dimension). Grounded on
// original_source/ip_proofs/src/applications/poly_commit.rs.
package polycommit

import (
	"errors"

	"github.com/tipa-crypto/go-tipa/curve"
)

var (
	// ErrDegreeTooLarge is returned by KZGCommit/KZGOpen when the
	// polynomial's degree exceeds the available SRS powers.
	ErrDegreeTooLarge = errors.New("polycommit: polynomial degree exceeds SRS size")
)

// KZGCommit computes a monomial-basis KZG commitment Sum_j coeffs[j]*powers[j]
// (grounded on KZG<P>::commit, and on mimoo-gnark-crypto's
// kzg.go Commit, which performs the same padded MSM).
func KZGCommit(powers []curve.G1, coeffs []curve.Scalar) (curve.G1, error) {
	if len(coeffs) > len(powers) {
		return curve.G1{}, ErrDegreeTooLarge
	}
	padded := make([]curve.Scalar, len(powers))
	copy(padded, coeffs)
	for i := len(coeffs); i < len(padded); i++ {
		padded[i] = curve.ZeroScalar()
	}
	return curve.MSMG1(powers, padded)
}

// KZGOpen produces an opening proof for coeffs at point: the commitment to
// the quotient polynomial coeffs(X)/(X - point), discarding the remainder
// coeffs(point) (KZG<P>::open's "trick": dividing coeffs(X) directly by
// (X-point) gives the same quotient as dividing coeffs(X)-coeffs(point)
// would, since subtracting a constant never changes a degree>=1 quotient).
func KZGOpen(powers []curve.G1, coeffs []curve.Scalar, point curve.Scalar) (curve.G1, error) {
	if len(coeffs) > len(powers) {
		return curve.G1{}, ErrDegreeTooLarge
	}
	quotient := dividePolyByXMinusPoint(coeffs, point)
	return KZGCommit(powers, quotient)
}

// KZGVerify checks com is a commitment to a polynomial whose value at point
// is eval, given the opening proof, via the pairing equation
// e(com - eval*g, h) == e(proof, h_alpha - point*h) (KZG<P>::verify).
func KZGVerify(g curve.G1, h, hAlpha curve.G2, com curve.G1, point, eval curve.Scalar, proof curve.G1) (bool, error) {
	lhs, err := curve.Pairing(com.Sub(g.ScalarMul(eval)), h)
	if err != nil {
		return false, err
	}
	rhs, err := curve.Pairing(proof, hAlpha.Sub(h.ScalarMul(point)))
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// dividePolyByXMinusPoint performs synthetic division of poly (low-to-high
// coefficients) by the monic linear divisor (X - point), discarding the
// remainder.
func dividePolyByXMinusPoint(poly []curve.Scalar, point curve.Scalar) []curve.Scalar {
	n := len(poly) - 1
	if n <= 0 {
		return nil
	}
	q := make([]curve.Scalar, n)
	q[n-1] = poly[n]
	for i := n - 2; i >= 0; i-- {
		q[i] = poly[i+1].Add(point.Mul(q[i+1]))
	}
	return q
}

// evalPoly evaluates poly (low-to-high coefficients) at x by Horner's method.
func evalPoly(poly []curve.Scalar, x curve.Scalar) curve.Scalar {
	acc := curve.ZeroScalar()
	for i := len(poly) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(poly[i])
	}
	return acc
}
