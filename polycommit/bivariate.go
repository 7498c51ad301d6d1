package polycommit

import (
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/tipa-crypto/go-tipa/commitment"
	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/innerproduct"
	"github.com/tipa-crypto/go-tipa/tipa"
	"github.com/tipa-crypto/go-tipa/tipa/ssm"
)

// ErrDegreeMismatch is returned by BivariateSetup when xDegree is too small
// relative to yDegree for the KZG row-commitment SRS to cover a TIPA
// recursion over the row dimension (poly_commit.rs's verbatim TODO:
// "Doesn't work for general (x_degree,y_degree) pairs, only for cases
// where x_degree >= y_degree/2" — spec's Open Question names this
// precondition as one reimplementations must document rather than widen).
var ErrDegreeMismatch = errors.New("polycommit: x_degree must be >= ceil(y_degree/2)")

// BivariatePolynomial holds a dense bivariate polynomial as one coefficient
// row per power of X: YPolynomials[i] are the (low-to-high) Y-coefficients
// of the degree-i-in-X term. Grounded on poly_commit.rs's BivariatePolynomial.
type BivariatePolynomial struct {
	YPolynomials [][]curve.Scalar
}

// Evaluate computes the polynomial's value at (x, y) by Horner-evaluating
// each row at y, then Horner-combining the row results over x.
func (p BivariatePolynomial) Evaluate(x, y curve.Scalar) curve.Scalar {
	acc := curve.ZeroScalar()
	for i := len(p.YPolynomials) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(evalPoly(p.YPolynomials[i], y))
	}
	return acc
}

// BivariateSRS bundles the TIPA SRS (sized to the row dimension) with the
// KZG row-commitment powers (sized to the column dimension). The row/x-power
// inner product is proven with tipa/ssm's structured-scalar-message
// specialization (poly_commit.rs's "prove_with_structured_scalar_message
// over (y_polynomial_comms, powers_of_x)"), since the x-power vector is
// public and structured — so the verifier never needs an RMC commitment key
// for it at all.
type BivariateSRS struct {
	IPSRS     tipa.SRS
	KZGPowers []curve.G1
}

// BivariateVerifierKey is the data a verifier needs: the compact TIPA
// verifier SRS and the KZG evaluation-point generators (g, h, h_alpha). The
// SSM elision means no right-hand commitment key is needed here.
type BivariateVerifierKey struct {
	TIPA tipa.VerifierSRS
}

// BivariateSetup builds an SRS for bivariate polynomials of the given
// degrees. xDegree is the degree in X (the TIPA/row dimension, rows =
// xDegree+1); yDegree is the degree in Y (the KZG/column dimension).
func BivariateSetup(rng io.Reader, xDegree, yDegree int) (BivariateSRS, error) {
	if xDegree < ceilDiv(yDegree, 2) {
		return BivariateSRS{}, ErrDegreeMismatch
	}
	ipsrs, err := tipa.Setup(rng, xDegree+1)
	if err != nil {
		return BivariateSRS{}, err
	}
	if yDegree+1 > len(ipsrs.GAlphaPowers) {
		return BivariateSRS{}, ErrDegreeMismatch
	}
	kzgPowers := make([]curve.G1, yDegree+1)
	copy(kzgPowers, ipsrs.GAlphaPowers[:yDegree+1])
	return BivariateSRS{IPSRS: ipsrs, KZGPowers: kzgPowers}, nil
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// VerifierKey extracts the compact verifier key from a BivariateSRS.
func (srs BivariateSRS) VerifierKey() BivariateVerifierKey {
	return BivariateVerifierKey{TIPA: srs.IPSRS.GetVerifierKey()}
}

func padRows(rows [][]curve.Scalar, n int) [][]curve.Scalar {
	out := make([][]curve.Scalar, n)
	zero := curve.ZeroScalar()
	for i := 0; i < n; i++ {
		if i < len(rows) {
			out[i] = rows[i]
		} else {
			out[i] = []curve.Scalar{zero}
		}
	}
	return out
}

// BivariateCommit commits to poly: a per-row KZG commitment (computed in
// parallel, since rows are independent), batched under AFGHO into a single
// GT element (poly_commit.rs's BivariatePolynomialCommitment::commit). It
// returns both the top-level commitment and the row commitments, the
// latter needed again by Open.
func BivariateCommit(srs BivariateSRS, poly BivariatePolynomial) (curve.GT, []curve.G1, error) {
	ckLeft, _ := srs.IPSRS.GetCommitmentKeys()
	rows := padRows(poly.YPolynomials, len(ckLeft))

	rowComs := make([]curve.G1, len(ckLeft))
	var g errgroup.Group
	for i := range rows {
		i := i
		g.Go(func() error {
			com, err := KZGCommit(srs.KZGPowers, rows[i])
			if err != nil {
				return err
			}
			rowComs[i] = com
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return curve.GT{}, nil, err
	}

	com, err := commitment.AFGHOG1{}.Commit(ckLeft, rowComs)
	return com, rowComs, err
}

// OpeningProof is the evidence that BivariateCommit's output opens to eval
// at (x, y): a TIPA-with-SSM proof that the row commitments fold against
// the powers of x to the claimed y-evaluation commitment, plus a KZG
// opening of that commitment at y. Grounded on poly_commit.rs's
// OpeningProof.
type OpeningProof struct {
	IPProof   ssm.Proof[curve.G1, curve.GT, curve.G1]
	YEvalComm curve.G1
	KZGProof  curve.G1
}

func bivariateRelation() ssm.Relation[curve.G1, curve.G1, curve.GT] {
	return ssm.Relation[curve.G1, curve.G1, curve.GT]{
		IP:  innerproduct.MultiexpG1{}.InnerProduct,
		LMC: commitment.AFGHOG1{},
	}
}

// BivariateOpen proves poly(x,y) = eval, given the row commitments already
// produced by BivariateCommit. Grounded on
// BivariatePolynomialCommitment::open: it folds the zero-padded coefficient
// matrix by the powers of x into a single "y_eval" polynomial, commits it
// via KZG, and proves the row/x-power inner product matches that
// commitment via TIPA-with-SSM — the x-power vector is never committed or
// transmitted, only ever recomputed from x (spec.md §4.6's "provide a
// TIPA-with-SSM proof that Sum x^i*com_i = C*").
func BivariateOpen(srs BivariateSRS, poly BivariatePolynomial, rowComs []curve.G1, x, y curve.Scalar) (OpeningProof, curve.Scalar, error) {
	ckLeft, _ := srs.IPSRS.GetCommitmentKeys()
	n := len(ckLeft)
	rows := padRows(poly.YPolynomials, n)
	xPowers := ssm.StructuredScalarPowers(n, x)

	yEvalCoeffs := make([]curve.Scalar, len(srs.KZGPowers))
	for j := range yEvalCoeffs {
		acc := curve.ZeroScalar()
		for i := 0; i < n; i++ {
			if j < len(rows[i]) {
				acc = acc.Add(xPowers[i].Mul(rows[i][j]))
			}
		}
		yEvalCoeffs[j] = acc
	}

	yEvalComm, err := KZGCommit(srs.KZGPowers, yEvalCoeffs)
	if err != nil {
		return OpeningProof{}, curve.Scalar{}, err
	}

	comA, err := commitment.AFGHOG1{}.Commit(ckLeft, rowComs)
	if err != nil {
		return OpeningProof{}, curve.Scalar{}, err
	}
	// comT = <rowComs, xPowers> = Sum_i x^i * KZGCommit(row_i) =
	// KZGCommit(Sum_i x^i * row_i) = KZGCommit(yEvalCoeffs) = yEvalComm,
	// by linearity of the commitment and the inner product.
	comT := yEvalComm

	rel := bivariateRelation()
	ipProof, err := rel.ProveWithSSM(srs.IPSRS, rowComs, x, ckLeft, comA, comT)
	if err != nil {
		return OpeningProof{}, curve.Scalar{}, err
	}

	kzgProof, err := KZGOpen(srs.KZGPowers, yEvalCoeffs, y)
	if err != nil {
		return OpeningProof{}, curve.Scalar{}, err
	}

	eval := evalPoly(yEvalCoeffs, y)
	return OpeningProof{IPProof: ipProof, YEvalComm: yEvalComm, KZGProof: kzgProof}, eval, nil
}

// BivariateVerify checks proof attests that the polynomial committed to as
// com evaluates to eval at (x, y). It never recomputes or opens a
// commitment to the x-power vector; VerifyWithSSM recovers the folded
// x-power value directly from x and the proof's own challenge transcript.
func BivariateVerify(vk BivariateVerifierKey, com curve.GT, x, y, eval curve.Scalar, proof OpeningProof) (bool, error) {
	rel := bivariateRelation()
	ipOK, err := rel.VerifyWithSSM(vk.TIPA, x, com, proof.YEvalComm, proof.IPProof)
	if err != nil {
		return false, err
	}

	kzgOK, err := KZGVerify(vk.TIPA.G, vk.TIPA.H, vk.TIPA.HAlpha, proof.YEvalComm, y, eval, proof.KZGProof)
	if err != nil {
		return false, err
	}

	return ipOK && kzgOK, nil
}
