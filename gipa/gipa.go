// Package gipa implements the Generalized Inner Product Argument (spec.md
// §4.1, component C5): a Fiat-Shamir-folded recursive halving of two
// committed vectors down to a single pair of elements, logarithmic in the
// vector length. Grounded on original_source/gipa/src/lib.rs's
// recursive_prove, generalized from that crate's trait-bound generics to
// Go's Element constraint (package group). The companion verifier
// (ip_proofs/src/gipa, referencing GIPA::verify_recursive_challenge_transcript)
// was not present in the retrieved sources; its commitment fold
// com' = com + c*com_1 + c_inv*com_2 is derived here directly from the
// bilinearity of Commit and InnerProduct, the same bilinearity
// recursive_prove's own fold relies on.
package gipa

import (
	"errors"

	"github.com/tipa-crypto/go-tipa/commitment"
	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/internal/fiatshamir"
)

var (
	// ErrMessageLengthInvalid is returned when the two message vectors
	// differ in length or that length is not a power of two.
	ErrMessageLengthInvalid = errors.New("gipa: message vectors must have equal, power-of-two length")
	// ErrInnerProductInvalid is returned when the claimed inner product
	// disagrees with the computed one, or an input commitment fails to verify.
	ErrInnerProductInvalid = errors.New("gipa: inner product not sound")
	// ErrChallengeDerivationFailed signals the Fiat-Shamir rejection-sampling
	// loop never produced an invertible canonical challenge; astronomically
	// unlikely over F_r, surfaced rather than looped on forever.
	ErrChallengeDerivationFailed = errors.New("gipa: could not derive an invertible challenge")
)

// Element is group.Element plus canonical serialization, the extra
// capability GIPA needs to feed commitments into the Fiat-Shamir
// transcript. Every concrete type in package curve satisfies it.
type Element[T any] interface {
	Add(T) T
	Neg() T
	ScalarMul(curve.Scalar) T
	Equal(T) bool
	IsIdentity() bool
	Bytes() []byte
}

// Relation bundles the inner product and the two side commitment schemes
// GIPA recurses over. L, R are the left/right message types; T is the
// inner product's output type (always committed with the Identity scheme
// at the call site, spec.md §4.1); LK, RK are the left/right commitment key
// types; CL, CR their outputs.
type Relation[L Element[L], R Element[R], T Element[T], LK Element[LK], RK Element[RK], CL Element[CL], CR Element[CR]] struct {
	IP  func(a []L, b []R) (T, error)
	LMC commitment.Scheme[LK, L, CL]
	RMC commitment.Scheme[RK, R, CR]
}

// Triple is a (LMC, RMC, IPC) commitment output triple.
type Triple[CL, CR, T any] struct {
	A CL
	B CR
	T T
}

// Step is one recursion level's pair of cross commitments, stored
// top-down (Step[0] is the largest, first-halved round).
type Step[CL, CR, T any] struct {
	Com1 Triple[CL, CR, T]
	Com2 Triple[CL, CR, T]
}

// Proof is the full GIPA transcript: one Step per halving round (top-down),
// plus the base-case single-element messages.
type Proof[L, R, CL, CR, T any] struct {
	Steps []Step[CL, CR, T]
	BaseA L
	BaseB R
}

// Aux carries side information the TIPA layer needs beyond the bare proof:
// the folded commitment keys at the base case, and the full challenge
// transcript (top-down, same order as Steps) used to build the KZG
// well-formedness polynomials.
type Aux[LK, RK any] struct {
	CKABase    LK
	CKBBase    RK
	Transcript []curve.Scalar
}

// Prove runs GIPA's recursive halving on (a,b), given commitment keys and
// the claimed commitments to (a, b, <a,b>). It returns the recursion proof
// and the auxiliary data TIPA needs to prove the final keys well-formed.
func (rel Relation[L, R, T, LK, RK, CL, CR]) Prove(
	a []L, b []R,
	ckA []LK, ckB []RK,
	comA CL, comB CR, comT T,
) (Proof[L, R, CL, CR, T], Aux[LK, RK], error) {
	var zeroProof Proof[L, R, CL, CR, T]
	var zeroAux Aux[LK, RK]

	if len(a) != len(b) || len(a) == 0 || (len(a)&(len(a)-1)) != 0 {
		return zeroProof, zeroAux, ErrMessageLengthInvalid
	}
	t, err := rel.IP(a, b)
	if err != nil {
		return zeroProof, zeroAux, err
	}
	if !t.Equal(comT) {
		return zeroProof, zeroAux, ErrInnerProductInvalid
	}
	okA, err := rel.LMC.Verify(ckA, a, comA)
	if err != nil {
		return zeroProof, zeroAux, err
	}
	okB, err := rel.RMC.Verify(ckB, b, comB)
	if err != nil {
		return zeroProof, zeroAux, err
	}
	if !okA || !okB {
		return zeroProof, zeroAux, ErrInnerProductInvalid
	}

	steps, baseA, baseB, ckABase, ckBBase, transcript, err := rel.recursiveProve(a, b, ckA, ckB, curve.ZeroScalar())
	if err != nil {
		return zeroProof, zeroAux, err
	}
	reverseSteps(steps)
	reverseScalars(transcript)

	return Proof[L, R, CL, CR, T]{Steps: steps, BaseA: baseA, BaseB: baseB},
		Aux[LK, RK]{CKABase: ckABase, CKBBase: ckBBase, Transcript: transcript}, nil
}

func (rel Relation[L, R, T, LK, RK, CL, CR]) recursiveProve(
	a []L, b []R, ckA []LK, ckB []RK, transcript curve.Scalar,
) ([]Step[CL, CR, T], L, R, LK, RK, []curve.Scalar, error) {
	var zeroL L
	var zeroR R
	var zeroLK LK
	var zeroRK RK

	if len(a) == 1 {
		return nil, a[0], b[0], ckA[0], ckB[0], nil, nil
	}

	split := len(a) / 2
	a1, a2 := a[split:], a[:split]
	ckA1, ckA2 := ckA[:split], ckA[split:]
	b1, b2 := b[:split], b[split:]
	ckB1, ckB2 := ckB[split:], ckB[:split]

	com1, err := rel.commitTriple(ckA1, a1, ckB1, b1)
	if err != nil {
		return nil, zeroL, zeroR, zeroLK, zeroRK, nil, err
	}
	com2, err := rel.commitTriple(ckA2, a2, ckB2, b2)
	if err != nil {
		return nil, zeroL, zeroR, zeroLK, zeroRK, nil, err
	}

	c, cInv, ok := fiatshamir.GIPARound(transcript, tripleBytes(com1), tripleBytes(com2))
	if !ok {
		return nil, zeroL, zeroR, zeroLK, zeroRK, nil, ErrChallengeDerivationFailed
	}

	aRec := foldLeft(a1, a2, c)
	bRec := foldRightMessage(b1, b2, cInv)
	ckARec := foldLeftKey(ckA1, ckA2, cInv)
	ckBRec := foldRightKey(ckB1, ckB2, c)

	steps, baseA, baseB, ckABase, ckBBase, trail, err := rel.recursiveProve(aRec, bRec, ckARec, ckBRec, c)
	if err != nil {
		return nil, zeroL, zeroR, zeroLK, zeroRK, nil, err
	}
	steps = append(steps, Step[CL, CR, T]{Com1: com1, Com2: com2})
	trail = append(trail, c)
	return steps, baseA, baseB, ckABase, ckBBase, trail, nil
}

func (rel Relation[L, R, T, LK, RK, CL, CR]) commitTriple(ckA []LK, a []L, ckB []RK, b []R) (Triple[CL, CR, T], error) {
	comA, err := rel.LMC.Commit(ckA, a)
	if err != nil {
		return Triple[CL, CR, T]{}, err
	}
	comB, err := rel.RMC.Commit(ckB, b)
	if err != nil {
		return Triple[CL, CR, T]{}, err
	}
	t, err := rel.IP(a, b)
	if err != nil {
		return Triple[CL, CR, T]{}, err
	}
	return Triple[CL, CR, T]{A: comA, B: comB, T: t}, nil
}

// Verify replays the Fiat-Shamir transcript from the stored steps, folding
// the top-level commitments down to the base case, and checks the folded
// commitments against the proof's single-element base messages. It returns
// the replayed challenge transcript (top-down) for TIPA's KZG layer.
func (rel Relation[L, R, T, LK, RK, CL, CR]) Verify(
	ckABase LK, ckBBase RK,
	comA CL, comB CR, comT T,
	proof Proof[L, R, CL, CR, T],
) (bool, []curve.Scalar, error) {
	transcript := curve.ZeroScalar()
	challenges := make([]curve.Scalar, 0, len(proof.Steps))
	curA, curB, curT := comA, comB, comT
	for _, step := range proof.Steps {
		c, cInv, ok := fiatshamir.GIPARound(transcript, tripleBytes(step.Com1), tripleBytes(step.Com2))
		if !ok {
			return false, nil, ErrChallengeDerivationFailed
		}
		curA = curA.Add(step.Com1.A.ScalarMul(c)).Add(step.Com2.A.ScalarMul(cInv))
		curB = curB.Add(step.Com1.B.ScalarMul(c)).Add(step.Com2.B.ScalarMul(cInv))
		curT = curT.Add(step.Com1.T.ScalarMul(c)).Add(step.Com2.T.ScalarMul(cInv))
		challenges = append(challenges, c)
		transcript = c
	}

	baseT, err := rel.IP([]L{proof.BaseA}, []R{proof.BaseB})
	if err != nil {
		return false, nil, err
	}
	okA, err := rel.LMC.Verify([]LK{ckABase}, []L{proof.BaseA}, curA)
	if err != nil {
		return false, nil, err
	}
	okB, err := rel.RMC.Verify([]RK{ckBBase}, []R{proof.BaseB}, curB)
	if err != nil {
		return false, nil, err
	}
	return okA && okB && baseT.Equal(curT), challenges, nil
}

func foldLeft[L Element[L]](a1, a2 []L, c curve.Scalar) []L {
	out := make([]L, len(a1))
	for i := range a1 {
		out[i] = a1[i].ScalarMul(c).Add(a2[i])
	}
	return out
}

func foldRightMessage[R Element[R]](b1, b2 []R, cInv curve.Scalar) []R {
	out := make([]R, len(b1))
	for i := range b1 {
		out[i] = b2[i].ScalarMul(cInv).Add(b1[i])
	}
	return out
}

func foldLeftKey[LK Element[LK]](ckA1, ckA2 []LK, cInv curve.Scalar) []LK {
	out := make([]LK, len(ckA1))
	for i := range ckA1 {
		out[i] = ckA2[i].ScalarMul(cInv).Add(ckA1[i])
	}
	return out
}

func foldRightKey[RK Element[RK]](ckB1, ckB2 []RK, c curve.Scalar) []RK {
	out := make([]RK, len(ckB1))
	for i := range ckB1 {
		out[i] = ckB1[i].ScalarMul(c).Add(ckB2[i])
	}
	return out
}

func tripleBytes[CL Element[CL], CR Element[CR], T Element[T]](t Triple[CL, CR, T]) []byte {
	out := append([]byte{}, t.A.Bytes()...)
	out = append(out, t.B.Bytes()...)
	out = append(out, t.T.Bytes()...)
	return out
}

func reverseSteps[CL, CR, T any](s []Step[CL, CR, T]) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseScalars(s []curve.Scalar) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
