package polycommit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tipa-crypto/go-tipa/curve"
)

func randomScalars(rng *rand.Rand, n int) []curve.Scalar {
	out := make([]curve.Scalar, n)
	for i := range out {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			panic(err)
		}
		out[i] = s
	}
	return out
}

// TestBivariateRoundTrip is spec.md §8's "bivariate polynomial commitment,
// d_x = d_y = 7" scenario and law 6 (polynomial round-trip): commit to a
// random 8x8 coefficient matrix, open at a random (x,y), verify against the
// polynomial's actual evaluation.
func TestBivariateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	const degree = 7 // 8 rows/columns

	srs, err := BivariateSetup(rng, degree, degree)
	require.NoError(t, err)

	rows := make([][]curve.Scalar, degree+1)
	for i := range rows {
		rows[i] = randomScalars(rng, degree+1)
	}
	poly := BivariatePolynomial{YPolynomials: rows}

	com, rowComs, err := BivariateCommit(srs, poly)
	require.NoError(t, err)

	x, err := curve.RandomScalar(rng)
	require.NoError(t, err)
	y, err := curve.RandomScalar(rng)
	require.NoError(t, err)

	proof, eval, err := BivariateOpen(srs, poly, rowComs, x, y)
	require.NoError(t, err)
	require.True(t, eval.Equal(poly.Evaluate(x, y)))

	vk := srs.VerifierKey()
	ok, err := BivariateVerify(vk, com, x, y, eval, proof)
	require.NoError(t, err)
	require.True(t, ok)

	// A wrong claimed evaluation must not verify.
	ok, err = BivariateVerify(vk, com, x, y, eval.Add(curve.OneScalar()), proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBivariateSetupEnforcesDegreePrecondition(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	// x_degree=1 is smaller than ceil(y_degree/2)=4 for y_degree=7.
	_, err := BivariateSetup(rng, 1, 7)
	require.ErrorIs(t, err, ErrDegreeMismatch)
}

// TestUnivariateRoundTrip is spec.md §8's "univariate polynomial
// commitment, d = 56" scenario, which maps internally to a 7x7 bivariate
// decomposition.
func TestUnivariateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	const degree = 56

	srs, err := UnivariateSetup(rng, degree)
	require.NoError(t, err)
	require.Equal(t, 7, srs.XDegree)
	require.Equal(t, 7, srs.YDegree)

	coeffs := randomScalars(rng, degree+1)
	com, rowComs, err := UnivariateCommit(srs, coeffs)
	require.NoError(t, err)

	point, err := curve.RandomScalar(rng)
	require.NoError(t, err)

	proof, eval, err := UnivariateOpen(srs, coeffs, rowComs, point)
	require.NoError(t, err)
	require.True(t, eval.Equal(evalPoly(coeffs, point)))

	vk := srs.VerifierKey()
	ok, err := UnivariateVerify(vk, srs.YDegree, com, point, eval, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestKZGCommitOpenVerify(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	const degree = 15

	g := curve.GeneratorG1()
	h := curve.GeneratorG2()
	alpha, err := curve.RandomScalar(rng)
	require.NoError(t, err)
	hAlpha := h.ScalarMul(alpha)

	powers := make([]curve.G1, degree+1)
	pow := curve.OneScalar()
	for i := range powers {
		powers[i] = g.ScalarMul(pow)
		pow = pow.Mul(alpha)
	}

	coeffs := randomScalars(rng, degree+1)
	com, err := KZGCommit(powers, coeffs)
	require.NoError(t, err)

	point, err := curve.RandomScalar(rng)
	require.NoError(t, err)
	eval := evalPoly(coeffs, point)

	proof, err := KZGOpen(powers, coeffs, point)
	require.NoError(t, err)

	ok, err := KZGVerify(g, h, hAlpha, com, point, eval, proof)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = KZGVerify(g, h, hAlpha, com, point, eval.Add(curve.OneScalar()), proof)
	require.NoError(t, err)
	require.False(t, ok)
}
