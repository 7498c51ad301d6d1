// Package ssm implements TIPA's structured-scalar-message specialization
// (spec.md §4.1/§4.5, component C7): when the right-hand message is already
// known by both parties to be consecutive powers of a scalar (r^0, r^1,
// ..., r^{n-1}), the RMC commitment to it is redundant — the verifier can
// recompute the folded right message directly from r using the same
// product-form evaluation TIPA already uses for its commitment-key
// polynomials. ProveWithSSM/VerifyWithSSM run the same GIPA-style halving
// recursion and left-key (ckA) KZG well-formedness proof as package tipa,
// but never commit, transmit, or open anything for the right side: no comB
// input, no base-case b*, no FinalCKB, no FinalCKBPrf.
// original_source/ip_proofs/src/tipa/structured_scalar_message.rs was not
// present in the retrieved sources; this package is grounded on the one
// call site available (ip_proofs/src/tipa/mod.rs's
// pairing_inner_product_with_srs_shift_test, which builds r_vec via
// structured_scalar_power and uses it exactly as the per-index scaling
// vector ProveWithSRSShift already expects), on
// ip_proofs/src/applications/poly_commit.rs's description of
// "prove_with_structured_scalar_message over (y_polynomial_comms,
// powers_of_x)", and on package tipa's own left/right KZG machinery
// (tipa/polynomial.go), reused here via its exported helpers rather than
// duplicated.
package ssm

import (
	"errors"

	"github.com/tipa-crypto/go-tipa/commitment"
	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/gipa"
	"github.com/tipa-crypto/go-tipa/internal/fiatshamir"
	"github.com/tipa-crypto/go-tipa/tipa"
)

var (
	// ErrMessageLengthInvalid is returned when the left message and
	// commitment key don't share a positive power-of-two length.
	ErrMessageLengthInvalid = errors.New("ssm: left message and commitment key must have equal, power-of-two length")
	// ErrInnerProductInvalid is returned when the claimed inputs fail the
	// base-case checks Prove runs before recursing.
	ErrInnerProductInvalid = errors.New("ssm: inner product not sound")
	// ErrChallengeDerivationFailed mirrors gipa.ErrChallengeDerivationFailed
	// for this package's independent recursion.
	ErrChallengeDerivationFailed = errors.New("ssm: could not derive an invertible challenge")
)

// StructuredScalarPowers returns (r^0, r^1, ..., r^{n-1}): the public
// right-hand message SSM elides ever committing to.
func StructuredScalarPowers(n int, r curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, n)
	pow := curve.OneScalar()
	for i := range out {
		out[i] = pow
		pow = pow.Mul(r)
	}
	return out
}

// FoldedValue computes the single scalar a structured-scalar right message
// (r^0..r^{n-1}) folds down to after GIPA recursion to length 1, directly
// from the public scalar r and the verifier's challenge transcript. This is
// what VerifyWithSSM uses in place of an RMC base-case opening: it mirrors
// GIPA's b_recurse = c_inv*b2 + b1 fold applied repeatedly to the r-power
// vector, without materializing or committing to the vector: each round
// scales the remaining powers by (1 + c_inv * r^half), so the result is
// tipa.PolynomialEvaluationProductForm over the inverse transcript at z = 1
// with shift r. It returns zero if n != 2^len(transcript) or a challenge is
// zero.
func FoldedValue(transcript []curve.Scalar, r curve.Scalar, n int) curve.Scalar {
	if n != 1<<len(transcript) {
		return curve.ZeroScalar()
	}
	transcriptInverse := make([]curve.Scalar, len(transcript))
	for i, c := range transcript {
		cInv, ok := c.Inverse()
		if !ok {
			return curve.ZeroScalar()
		}
		transcriptInverse[i] = cInv
	}
	return tipa.PolynomialEvaluationProductForm(transcriptInverse, curve.OneScalar(), r)
}

// Triple is an (LMC, IPC) commitment output pair — GIPA's usual
// (A,B,T) triple with the RMC component B dropped, since the right side is
// never committed.
type Triple[CL, T any] struct {
	A CL
	T T
}

// Step is one recursion level's pair of cross commitments, stored top-down.
type Step[CL, T any] struct {
	Com1 Triple[CL, T]
	Com2 Triple[CL, T]
}

// Proof is a complete TIPA-with-SSM proof: the halving recursion over the
// left message plus the single (left-only) KZG well-formedness opening.
// There is no base-case right message and no right-key proof — both are
// recomputed by the verifier from the public scalar r.
type Proof[L, CL, T any] struct {
	Steps       []Step[CL, T]
	BaseA       L
	FinalCKA    curve.G2
	FinalCKAPrf curve.G2
}

// Relation is an SSM TIPA instance over left messages L (LMC key fixed to
// G2), inner-product output T, against an implicit right message of
// consecutive powers of a scalar r.
type Relation[L gipa.Element[L], T gipa.Element[T], CL gipa.Element[CL]] struct {
	IP  func(a []L, b []curve.Scalar) (T, error)
	LMC commitment.Scheme[curve.G2, L, CL]
}

// ProveWithSSM runs GIPA's halving recursion on (a, r^0..r^{n-1}) and
// attaches a KZG well-formedness proof for the final folded left
// commitment key only — the right side (structured, public) is folded
// alongside for the prover's own bookkeeping but never committed, and
// never appears in the proof.
func (rel Relation[L, T, CL]) ProveWithSSM(
	srs tipa.SRS, a []L, r curve.Scalar, ckA []curve.G2,
	comA CL, comT T,
) (Proof[L, CL, T], error) {
	var zero Proof[L, CL, T]

	n := len(a)
	if n == 0 || (n&(n-1)) != 0 || n != len(ckA) {
		return zero, ErrMessageLengthInvalid
	}
	b := StructuredScalarPowers(n, r)

	t, err := rel.IP(a, b)
	if err != nil {
		return zero, err
	}
	if !t.Equal(comT) {
		return zero, ErrInnerProductInvalid
	}
	okA, err := rel.LMC.Verify(ckA, a, comA)
	if err != nil {
		return zero, err
	}
	if !okA {
		return zero, ErrInnerProductInvalid
	}

	steps, baseA, ckABase, transcript, err := rel.recursiveProve(a, b, ckA, curve.ZeroScalar())
	if err != nil {
		return zero, err
	}
	reverseSteps(steps)
	reverseScalars(transcript)

	transcriptInverse := make([]curve.Scalar, len(transcript))
	for i, x := range transcript {
		inv, ok := x.Inverse()
		if !ok {
			return zero, errors.New("ssm: challenge transcript contains a zero entry")
		}
		transcriptInverse[i] = inv
	}

	ckACoeffs := tipa.PolynomialCoefficientsFromTranscript(transcriptInverse, curve.OneScalar())
	if len(ckACoeffs) != len(srs.GAlphaPowers) {
		return zero, errors.New("ssm: SRS size does not match the recursion depth")
	}

	// The Fiat-Shamir input that would normally include ck_R*'s bytes
	// (tipa's KZGChallenge) has no ck_R* to hash in SSM, since the right
	// side is never committed; r itself is hashed in its place, binding
	// the evaluation challenge to the specific structured message.
	c := fiatshamir.KZGChallenge(transcript[0], ckABase.Bytes(), r.Bytes())

	ckAEval := tipa.PolynomialEvaluationProductForm(transcriptInverse, c, curve.OneScalar())
	quotientA := tipa.DividePolyByXMinusC(tipa.SubtractConstant(ckACoeffs, ckAEval), c)
	tipa.ResizeScalars(&quotientA, len(srs.GAlphaPowers))

	quotientAProof, err := curve.MSMG2(srs.HBetaPowers, quotientA)
	if err != nil {
		return zero, err
	}

	return Proof[L, CL, T]{
		Steps:       steps,
		BaseA:       baseA,
		FinalCKA:    ckABase,
		FinalCKAPrf: quotientAProof,
	}, nil
}

func (rel Relation[L, T, CL]) recursiveProve(
	a []L, b []curve.Scalar, ckA []curve.G2, transcript curve.Scalar,
) ([]Step[CL, T], L, curve.G2, []curve.Scalar, error) {
	var zeroL L
	var zeroCKA curve.G2

	if len(a) == 1 {
		return nil, a[0], ckA[0], nil, nil
	}

	split := len(a) / 2
	a1, a2 := a[split:], a[:split]
	ckA1, ckA2 := ckA[:split], ckA[split:]
	b1, b2 := b[:split], b[split:]

	com1, err := rel.commitPair(ckA1, a1, b1)
	if err != nil {
		return nil, zeroL, zeroCKA, nil, err
	}
	com2, err := rel.commitPair(ckA2, a2, b2)
	if err != nil {
		return nil, zeroL, zeroCKA, nil, err
	}

	c, cInv, ok := fiatshamir.GIPARound(transcript, pairBytes(com1), pairBytes(com2))
	if !ok {
		return nil, zeroL, zeroCKA, nil, ErrChallengeDerivationFailed
	}

	aRec := foldLeft(a1, a2, c)
	bRec := foldRightMessage(b1, b2, cInv)
	ckARec := foldLeftKey(ckA1, ckA2, cInv)

	steps, baseA, ckABase, trail, err := rel.recursiveProve(aRec, bRec, ckARec, c)
	if err != nil {
		return nil, zeroL, zeroCKA, nil, err
	}
	steps = append(steps, Step[CL, T]{Com1: com1, Com2: com2})
	trail = append(trail, c)
	return steps, baseA, ckABase, trail, nil
}

func (rel Relation[L, T, CL]) commitPair(ckA []curve.G2, a []L, b []curve.Scalar) (Triple[CL, T], error) {
	comA, err := rel.LMC.Commit(ckA, a)
	if err != nil {
		return Triple[CL, T]{}, err
	}
	t, err := rel.IP(a, b)
	if err != nil {
		return Triple[CL, T]{}, err
	}
	return Triple[CL, T]{A: comA, T: t}, nil
}

// VerifyWithSSM replays the Fiat-Shamir transcript, recomputes the folded
// right-hand base value from r via FoldedValue instead of opening any
// right-key commitment, and checks the single left-key KZG well-formedness
// opening. It never needs ck_R* or a transmitted b*.
func (rel Relation[L, T, CL]) VerifyWithSSM(
	vsrs tipa.VerifierSRS, r curve.Scalar,
	comA CL, comT T,
	proof Proof[L, CL, T],
) (bool, error) {
	transcript := curve.ZeroScalar()
	challenges := make([]curve.Scalar, 0, len(proof.Steps))
	curA, curT := comA, comT
	for _, step := range proof.Steps {
		c, cInv, ok := fiatshamir.GIPARound(transcript, pairBytes(step.Com1), pairBytes(step.Com2))
		if !ok {
			return false, ErrChallengeDerivationFailed
		}
		curA = curA.Add(step.Com1.A.ScalarMul(c)).Add(step.Com2.A.ScalarMul(cInv))
		curT = curT.Add(step.Com1.T.ScalarMul(c)).Add(step.Com2.T.ScalarMul(cInv))
		challenges = append(challenges, c)
		transcript = c
	}
	if len(challenges) == 0 {
		return false, errors.New("ssm: empty challenge transcript")
	}

	n := 1 << len(proof.Steps)
	baseB := FoldedValue(challenges, r, n)
	baseT, err := rel.IP([]L{proof.BaseA}, []curve.Scalar{baseB})
	if err != nil {
		return false, err
	}
	okA, err := rel.LMC.Verify([]curve.G2{proof.FinalCKA}, []L{proof.BaseA}, curA)
	if err != nil {
		return false, err
	}
	baseOK := okA && baseT.Equal(curT)

	transcriptInverse := make([]curve.Scalar, len(challenges))
	for i, x := range challenges {
		inv, ok := x.Inverse()
		if !ok {
			return false, errors.New("ssm: challenge transcript contains a zero entry")
		}
		transcriptInverse[i] = inv
	}

	c := fiatshamir.KZGChallenge(challenges[0], proof.FinalCKA.Bytes(), r.Bytes())
	ckAEval := tipa.PolynomialEvaluationProductForm(transcriptInverse, c, curve.OneScalar())

	// e(g, ckA - ckAEval*h) == e(g_beta - c*g, pi_A) — the same single
	// pairing check tipa.VerifyWithSRSShift runs for the left key; there is
	// no corresponding right-key check in SSM.
	lhsA, err := curve.Pairing(vsrs.G, proof.FinalCKA.Sub(vsrs.H.ScalarMul(ckAEval)))
	if err != nil {
		return false, err
	}
	rhsA, err := curve.Pairing(vsrs.GBeta.Sub(vsrs.G.ScalarMul(c)), proof.FinalCKAPrf)
	if err != nil {
		return false, err
	}
	ckAValid := lhsA.Equal(rhsA)

	return baseOK && ckAValid, nil
}

func foldLeft[L gipa.Element[L]](a1, a2 []L, c curve.Scalar) []L {
	out := make([]L, len(a1))
	for i := range a1 {
		out[i] = a1[i].ScalarMul(c).Add(a2[i])
	}
	return out
}

func foldRightMessage(b1, b2 []curve.Scalar, cInv curve.Scalar) []curve.Scalar {
	out := make([]curve.Scalar, len(b1))
	for i := range b1 {
		out[i] = b2[i].ScalarMul(cInv).Add(b1[i])
	}
	return out
}

func foldLeftKey(ckA1, ckA2 []curve.G2, cInv curve.Scalar) []curve.G2 {
	out := make([]curve.G2, len(ckA1))
	for i := range ckA1 {
		out[i] = ckA2[i].ScalarMul(cInv).Add(ckA1[i])
	}
	return out
}

func pairBytes[CL gipa.Element[CL], T gipa.Element[T]](t Triple[CL, T]) []byte {
	out := append([]byte{}, t.A.Bytes()...)
	out = append(out, t.T.Bytes()...)
	return out
}

func reverseSteps[CL, T any](s []Step[CL, T]) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseScalars(s []curve.Scalar) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
