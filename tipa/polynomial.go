package tipa

import "github.com/tipa-crypto/go-tipa/curve"

// PolynomialEvaluationProductForm evaluates, in O(log n) instead of
// expanding the polynomial, the degree-(2^(k+1) - 2) commitment-key
// polynomial implied by a GIPA challenge transcript of length k (top-down,
// first-round challenge first, as gipa returns it), at point z, scaled by
// r_shift. Grounded verbatim on
// original_source/ip_proofs/src/tipa/mod.rs's
// polynomial_evaluation_product_form_from_transcript: with x_i the
// transcript read from the last round back to the first, the polynomial is
// Prod_i (1 + x_i * (z^2*r_shift)^(2^i)), built via repeated squaring of
// z^2*r_shift. Exported so tipa/ssm can reuse it for the structured-scalar
// variant's left-key well-formedness proof without duplicating the formula.
func PolynomialEvaluationProductForm(transcript []curve.Scalar, z, rShift curve.Scalar) curve.Scalar {
	power2zr := z.Mul(z).Mul(rShift)
	result := curve.OneScalar()
	for i := len(transcript) - 1; i >= 0; i-- {
		term := curve.OneScalar().Add(transcript[i].Mul(power2zr))
		result = result.Mul(term)
		power2zr = power2zr.Mul(power2zr)
	}
	return result
}

// PolynomialCoefficientsFromTranscript expands the same product-form
// polynomial into its full coefficient vector over the basis {beta^j},
// interleaving zero coefficients at every odd index because the SRS keys
// used by GIPA are only the even powers of beta/alpha (spec's "even-indexed
// commitment keys" invariant, tipa.SRS.GetCommitmentKeys). The transcript
// is top-down; the last-round challenge multiplies the lowest key power,
// which is how gipa's halving fold combines the keys. Grounded
// verbatim on polynomial_coefficients_from_transcript. Exported for the
// same reason as PolynomialEvaluationProductForm.
func PolynomialCoefficientsFromTranscript(transcript []curve.Scalar, rShift curve.Scalar) []curve.Scalar {
	coefficients := []curve.Scalar{curve.OneScalar()}
	power2r := rShift
	for i := range transcript {
		x := transcript[len(transcript)-1-i]
		limit := 1 << uint(i)
		xr := x.Mul(power2r)
		for j := 0; j < limit; j++ {
			coefficients = append(coefficients, coefficients[j].Mul(xr))
		}
		power2r = power2r.Mul(power2r)
	}

	zero := curve.ZeroScalar()
	out := make([]curve.Scalar, 0, 2*len(coefficients)-1)
	for i, c := range coefficients {
		out = append(out, c)
		if i != len(coefficients)-1 {
			out = append(out, zero)
		}
	}
	return out
}

// SubtractConstant returns a copy of poly (low-to-high coefficients) with
// val subtracted from the constant term, i.e. poly(X) - val.
func SubtractConstant(poly []curve.Scalar, val curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, len(poly))
	copy(out, poly)
	out[0] = out[0].Sub(val)
	return out
}

// DividePolyByXMinusC performs synthetic division of poly (low-to-high) by
// the monic linear divisor (X - c), dropping the remainder: the dividend
// is constructed to vanish exactly at c (poly = P(X) - P(c)), so the
// remainder is always zero by the polynomial remainder theorem.
func DividePolyByXMinusC(poly []curve.Scalar, c curve.Scalar) []curve.Scalar {
	n := len(poly) - 1
	if n <= 0 {
		return nil
	}
	q := make([]curve.Scalar, n)
	q[n-1] = poly[n]
	for i := n - 2; i >= 0; i-- {
		q[i] = poly[i+1].Add(c.Mul(q[i+1]))
	}
	return q
}

// ResizeScalars pads poly with zero scalars up to length n in place.
func ResizeScalars(poly *[]curve.Scalar, n int) {
	if len(*poly) >= n {
		*poly = (*poly)[:n]
		return
	}
	zero := curve.ZeroScalar()
	for len(*poly) < n {
		*poly = append(*poly, zero)
	}
}
