package polycommit

import (
	"io"
	"math"

	"github.com/tipa-crypto/go-tipa/curve"
)

// UnivariateSRS wraps a BivariateSRS sized for a univariate polynomial of a
// given degree via the square-root-trick decomposition.
type UnivariateSRS struct {
	Bivariate   BivariateSRS
	XDegree     int
	YDegree     int
	TotalDegree int
}

// bivariateDegrees picks (xDegree, yDegree) for a univariate polynomial of
// the given degree: yDegree is the smallest power of two minus one at
// least as large as ceil(sqrt(degree+1))-1, and xDegree matches it, giving
// a roughly square decomposition. Grounded verbatim on
// poly_commit.rs's UnivariatePolynomialCommitment::bivariate_degrees.
func bivariateDegrees(degree int) (xDegree, yDegree int) {
	root := math.Ceil(math.Sqrt(float64(degree + 1)))
	d := nextPowerOfTwo(int(root)) - 1
	return d, d
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// bivariateForm reshapes a flat, low-to-high coefficient vector into
// BivariatePolynomial rows of length yDegree+1, zero-padding the final row.
// Grounded on poly_commit.rs's UnivariatePolynomialCommitment::bivariate_form.
func bivariateForm(coeffs []curve.Scalar, yDegree int) BivariatePolynomial {
	rowLen := yDegree + 1
	var rows [][]curve.Scalar
	for i := 0; i < len(coeffs); i += rowLen {
		end := i + rowLen
		if end > len(coeffs) {
			end = len(coeffs)
		}
		row := make([]curve.Scalar, rowLen)
		copy(row, coeffs[i:end])
		for j := end - i; j < rowLen; j++ {
			row[j] = curve.ZeroScalar()
		}
		rows = append(rows, row)
	}
	return BivariatePolynomial{YPolynomials: rows}
}

// UnivariateSetup builds an SRS for univariate polynomials up to the given
// degree.
func UnivariateSetup(rng io.Reader, degree int) (UnivariateSRS, error) {
	xDegree, yDegree := bivariateDegrees(degree)
	bsrs, err := BivariateSetup(rng, xDegree, yDegree)
	if err != nil {
		return UnivariateSRS{}, err
	}
	return UnivariateSRS{Bivariate: bsrs, XDegree: xDegree, YDegree: yDegree, TotalDegree: degree}, nil
}

// VerifierKey extracts the compact verifier key.
func (srs UnivariateSRS) VerifierKey() BivariateVerifierKey {
	return srs.Bivariate.VerifierKey()
}

// UnivariateCommit commits to coeffs (low-to-high), via the bivariate
// decomposition: x = point^(yDegree+1), y = point.
func UnivariateCommit(srs UnivariateSRS, coeffs []curve.Scalar) (curve.GT, []curve.G1, error) {
	poly := bivariateForm(coeffs, srs.YDegree)
	return BivariateCommit(srs.Bivariate, poly)
}

// UnivariateOpen proves coeffs evaluates to eval at point.
func UnivariateOpen(srs UnivariateSRS, coeffs []curve.Scalar, rowComs []curve.G1, point curve.Scalar) (OpeningProof, curve.Scalar, error) {
	poly := bivariateForm(coeffs, srs.YDegree)
	x := powScalar(point, srs.YDegree+1)
	return BivariateOpen(srs.Bivariate, poly, rowComs, x, point)
}

// UnivariateVerify checks proof attests that the polynomial committed to as
// com evaluates to eval at point.
func UnivariateVerify(vk BivariateVerifierKey, yDegree int, com curve.GT, point, eval curve.Scalar, proof OpeningProof) (bool, error) {
	x := powScalar(point, yDegree+1)
	return BivariateVerify(vk, com, x, point, eval, proof)
}

func powScalar(base curve.Scalar, exp int) curve.Scalar {
	result := curve.OneScalar()
	for i := 0; i < exp; i++ {
		result = result.Mul(base)
	}
	return result
}
