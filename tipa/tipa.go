// Package tipa implements the Targeted Inner Product Argument (spec.md
// §4.1, component C6): a trusted-setup SRS over BLS12-381, a GIPA
// recursion specialized to LMC key type G2 and RMC key type G1 (the shape
// every TIPA instantiation in original_source/ip_proofs/src/tipa/mod.rs
// uses), plus two KZG "commitment key well-formedness" proofs that let the
// verifier check the recursion's final folded keys in O(log n) instead of
// recomputing the fold itself.
package tipa

import (
	"errors"
	"io"

	"github.com/tipa-crypto/go-tipa/commitment"
	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/gipa"
	"github.com/tipa-crypto/go-tipa/internal/fiatshamir"
)

var (
	// ErrSizeTooSmall is returned by Setup for a non-positive vector length.
	ErrSizeTooSmall = errors.New("tipa: size must be positive")
)

// SRS is the TIPA structured reference string: odd and even powers of two
// independent trapdoors alpha, beta, in G1 and G2 respectively. Grounded on
// original_source/ip_proofs/src/tipa/mod.rs's SRS struct.
type SRS struct {
	GAlphaPowers []curve.G1 // g^{alpha^i}, i = 0..2n-2
	HBetaPowers  []curve.G2 // h^{beta^i}, i = 0..2n-2
	GBeta        curve.G1
	HAlpha       curve.G2
}

// VerifierSRS is the compact SRS slice the verifier needs.
type VerifierSRS struct {
	G      curve.G1
	H      curve.G2
	GBeta  curve.G1
	HAlpha curve.G2
}

// Setup samples a fresh SRS of the given size (the vector length TIPA will
// be run on) from rng. rng need not be cryptographically random for tests;
// production callers must supply a secure source since alpha, beta are the
// setup's toxic waste.
func Setup(rng io.Reader, size int) (SRS, error) {
	if size <= 0 {
		return SRS{}, ErrSizeTooSmall
	}
	alpha, err := curve.RandomScalar(rng)
	if err != nil {
		return SRS{}, err
	}
	beta, err := curve.RandomScalar(rng)
	if err != nil {
		return SRS{}, err
	}
	g := curve.GeneratorG1()
	h := curve.GeneratorG2()
	return SRS{
		GAlphaPowers: structuredPowersG1(2*size-1, g, alpha),
		HBetaPowers:  structuredPowersG2(2*size-1, h, beta),
		GBeta:        g.ScalarMul(beta),
		HAlpha:       h.ScalarMul(alpha),
	}, nil
}

func structuredPowersG1(n int, g curve.G1, s curve.Scalar) []curve.G1 {
	out := make([]curve.G1, n)
	pow := curve.OneScalar()
	for i := 0; i < n; i++ {
		out[i] = g.ScalarMul(pow)
		pow = pow.Mul(s)
	}
	return out
}

func structuredPowersG2(n int, h curve.G2, s curve.Scalar) []curve.G2 {
	out := make([]curve.G2, n)
	pow := curve.OneScalar()
	for i := 0; i < n; i++ {
		out[i] = h.ScalarMul(pow)
		pow = pow.Mul(s)
	}
	return out
}

// GetCommitmentKeys extracts the even-indexed powers that serve as the
// LMC (G2, from h_beta_powers) and RMC (G1, from g_alpha_powers)
// commitment keys for a vector of length len(GAlphaPowers)/2 + 1
// (odd powers are reserved for the KZG well-formedness openings).
func (srs SRS) GetCommitmentKeys() (ckLeft []curve.G2, ckRight []curve.G1) {
	for i := 0; i < len(srs.HBetaPowers); i += 2 {
		ckLeft = append(ckLeft, srs.HBetaPowers[i])
	}
	for i := 0; i < len(srs.GAlphaPowers); i += 2 {
		ckRight = append(ckRight, srs.GAlphaPowers[i])
	}
	return ckLeft, ckRight
}

// GetVerifierKey extracts the compact verifier SRS.
func (srs SRS) GetVerifierKey() VerifierSRS {
	return VerifierSRS{
		G:      srs.GAlphaPowers[0],
		H:      srs.HBetaPowers[0],
		GBeta:  srs.GBeta,
		HAlpha: srs.HAlpha,
	}
}

// Proof is a complete TIPA proof: the underlying GIPA recursion plus the
// two KZG well-formedness openings of the final folded commitment keys.
type Proof[L, R, CL, CR, T any] struct {
	GIPA        gipa.Proof[L, R, CL, CR, T]
	FinalCKA    curve.G2
	FinalCKB    curve.G1
	FinalCKAPrf curve.G2
	FinalCKBPrf curve.G1
}

// Relation is a TIPA instance over left messages L (LMC key fixed to G2),
// right messages R (RMC key fixed to G1), inner-product output T.
type Relation[L gipa.Element[L], R gipa.Element[R], T gipa.Element[T], CL gipa.Element[CL], CR gipa.Element[CR]] struct {
	IP  func(a []L, b []R) (T, error)
	LMC commitment.Scheme[curve.G2, L, CL]
	RMC commitment.Scheme[curve.G1, R, CR]
}

func (rel Relation[L, R, T, CL, CR]) gipaRelation() gipa.Relation[L, R, T, curve.G2, curve.G1, CL, CR] {
	return gipa.Relation[L, R, T, curve.G2, curve.G1, CL, CR]{
		IP:  rel.IP,
		LMC: rel.LMC,
		RMC: rel.RMC,
	}
}

// Prove is ProveWithSRSShift with r_shift = 1 (spec.md §4.1's base case, no SRS-shift
// composition).
func (rel Relation[L, R, T, CL, CR]) Prove(
	srs SRS, a []L, b []R, ckA []curve.G2, ckB []curve.G1,
	comA CL, comB CR, comT T,
) (Proof[L, R, CL, CR, T], error) {
	return rel.ProveWithSRSShift(srs, a, b, ckA, ckB, comA, comB, comT, curve.OneScalar())
}

// ProveWithSRSShift runs GIPA on (a,b) and attaches KZG well-formedness
// proofs for the final folded commitment keys, shifted by r_shift so the
// proof composes with an outer aggregation protocol that has already
// scaled the left message and inverse-scaled the left commitment key by a
// per-index structured scalar (original_source's
// prove_with_srs_shift / "used for efficient composition with aggregation
// protocols").
func (rel Relation[L, R, T, CL, CR]) ProveWithSRSShift(
	srs SRS, a []L, b []R, ckA []curve.G2, ckB []curve.G1,
	comA CL, comB CR, comT T, rShift curve.Scalar,
) (Proof[L, R, CL, CR, T], error) {
	gr := rel.gipaRelation()
	gproof, aux, err := gr.Prove(a, b, ckA, ckB, comA, comB, comT)
	if err != nil {
		return Proof[L, R, CL, CR, T]{}, err
	}

	transcript := aux.Transcript
	transcriptInverse := make([]curve.Scalar, len(transcript))
	for i, x := range transcript {
		inv, ok := x.Inverse()
		if !ok {
			return Proof[L, R, CL, CR, T]{}, errors.New("tipa: challenge transcript contains a zero entry")
		}
		transcriptInverse[i] = inv
	}
	rInv, ok := rShift.Inverse()
	if !ok {
		return Proof[L, R, CL, CR, T]{}, errors.New("tipa: r_shift must be invertible")
	}

	ckBCoeffs := PolynomialCoefficientsFromTranscript(transcript, curve.OneScalar())
	ckACoeffs := PolynomialCoefficientsFromTranscript(transcriptInverse, rInv)
	if len(ckACoeffs) != len(srs.GAlphaPowers) {
		return Proof[L, R, CL, CR, T]{}, errors.New("tipa: SRS size does not match the recursion depth")
	}

	c := fiatshamir.KZGChallenge(transcript[0], aux.CKABase.Bytes(), aux.CKBBase.Bytes())

	ckAEval := PolynomialEvaluationProductForm(transcriptInverse, c, rInv)
	ckBEval := PolynomialEvaluationProductForm(transcript, c, curve.OneScalar())

	quotientA := DividePolyByXMinusC(SubtractConstant(ckACoeffs, ckAEval), c)
	quotientB := DividePolyByXMinusC(SubtractConstant(ckBCoeffs, ckBEval), c)
	ResizeScalars(&quotientA, len(srs.GAlphaPowers))
	ResizeScalars(&quotientB, len(srs.GAlphaPowers))

	quotientAProof, err := curve.MSMG2(srs.HBetaPowers, quotientA)
	if err != nil {
		return Proof[L, R, CL, CR, T]{}, err
	}
	quotientBProof, err := curve.MSMG1(srs.GAlphaPowers, quotientB)
	if err != nil {
		return Proof[L, R, CL, CR, T]{}, err
	}

	return Proof[L, R, CL, CR, T]{
		GIPA:        gproof,
		FinalCKA:    aux.CKABase,
		FinalCKB:    aux.CKBBase,
		FinalCKAPrf: quotientAProof,
		FinalCKBPrf: quotientBProof,
	}, nil
}

// Verify is VerifyWithSRSShift with r_shift = 1.
func (rel Relation[L, R, T, CL, CR]) Verify(
	vsrs VerifierSRS, ckT commitment.Placeholder,
	comA CL, comB CR, comT T,
	proof Proof[L, R, CL, CR, T],
) (bool, error) {
	return rel.VerifyWithSRSShift(vsrs, comA, comB, comT, proof, curve.OneScalar())
}

// VerifyWithSRSShift replays the GIPA challenge transcript, checks the two
// KZG openings attesting the final commitment keys are well-formed
// (grounded on original_source's two pairing equations), and checks the
// base-case inner-product relation.
func (rel Relation[L, R, T, CL, CR]) VerifyWithSRSShift(
	vsrs VerifierSRS,
	comA CL, comB CR, comT T,
	proof Proof[L, R, CL, CR, T], rShift curve.Scalar,
) (bool, error) {
	gr := rel.gipaRelation()
	baseOK, transcript, err := gr.Verify(proof.FinalCKA, proof.FinalCKB, comA, comB, comT, proof.GIPA)
	if err != nil {
		return false, err
	}
	if len(transcript) == 0 {
		return false, errors.New("tipa: empty challenge transcript")
	}

	transcriptInverse := make([]curve.Scalar, len(transcript))
	for i, x := range transcript {
		inv, ok := x.Inverse()
		if !ok {
			return false, errors.New("tipa: challenge transcript contains a zero entry")
		}
		transcriptInverse[i] = inv
	}
	rShiftInv, ok := rShift.Inverse()
	if !ok {
		return false, errors.New("tipa: r_shift must be invertible")
	}

	c := fiatshamir.KZGChallenge(transcript[0], proof.FinalCKA.Bytes(), proof.FinalCKB.Bytes())

	ckAEval := PolynomialEvaluationProductForm(transcriptInverse, c, rShiftInv)
	ckBEval := PolynomialEvaluationProductForm(transcript, c, curve.OneScalar())

	// e(g, ckA - ckAEval*h) == e(g_beta - c*g, pi_A)
	lhsA, err := curve.Pairing(vsrs.G, proof.FinalCKA.Sub(vsrs.H.ScalarMul(ckAEval)))
	if err != nil {
		return false, err
	}
	rhsA, err := curve.Pairing(vsrs.GBeta.Sub(vsrs.G.ScalarMul(c)), proof.FinalCKAPrf)
	if err != nil {
		return false, err
	}
	ckAValid := lhsA.Equal(rhsA)

	// e(ckB - ckBEval*g, h) == e(pi_B, h_alpha - c*h)
	lhsB, err := curve.Pairing(proof.FinalCKB.Sub(vsrs.G.ScalarMul(ckBEval)), vsrs.H)
	if err != nil {
		return false, err
	}
	rhsB, err := curve.Pairing(proof.FinalCKBPrf, vsrs.HAlpha.Sub(vsrs.H.ScalarMul(c)))
	if err != nil {
		return false, err
	}
	ckBValid := lhsB.Equal(rhsB)

	return baseOK && ckAValid && ckBValid, nil
}
