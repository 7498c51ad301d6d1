package gipa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tipa-crypto/go-tipa/commitment"
	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/innerproduct"
)

// TestScalarInnerProductCompleteness is spec.md §8's "scalar inner product,
// n=8" scenario: Pedersen-over-G2 on the left, Pedersen-over-G1 on the
// right, scalar inner product in the middle.
func TestScalarInnerProductCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	n := 8

	ckA, err := commitment.PedersenG2{}.Setup(rng, n)
	require.NoError(t, err)
	ckB, err := commitment.PedersenG1{}.Setup(rng, n)
	require.NoError(t, err)

	a := make([]curve.Scalar, n)
	b := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		a[i], err = curve.RandomScalar(rng)
		require.NoError(t, err)
		b[i], err = curve.RandomScalar(rng)
		require.NoError(t, err)
	}

	rel := Relation[curve.Scalar, curve.Scalar, curve.Scalar, curve.G2, curve.G1, curve.G2, curve.G1]{
		IP:  innerproduct.Scalar{}.InnerProduct,
		LMC: commitment.PedersenG2{},
		RMC: commitment.PedersenG1{},
	}

	comA, err := commitment.PedersenG2{}.Commit(ckA, a)
	require.NoError(t, err)
	comB, err := commitment.PedersenG1{}.Commit(ckB, b)
	require.NoError(t, err)
	comT, err := rel.IP(a, b)
	require.NoError(t, err)

	proof, aux, err := rel.Prove(a, b, ckA, ckB, comA, comB, comT)
	require.NoError(t, err)

	ok, transcript, err := rel.Verify(aux.CKABase, aux.CKBBase, comA, comB, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, transcript, 3) // log2(8)

	// Law 2: non-power-of-two length is rejected.
	_, _, err = rel.Prove(a[:7], b[:7], ckA[:7], ckB[:7], comA, comB, comT)
	require.ErrorIs(t, err, ErrMessageLengthInvalid)

	// Law 3: mutating an input commitment causes Prove to fail.
	badComA := comA.Add(ckA[0].ScalarMul(curve.OneScalar()))
	_, _, err = rel.Prove(a, b, ckA, ckB, badComA, comB, comT)
	require.ErrorIs(t, err, ErrInnerProductInvalid)

	// Law 4: two honest proofs of the same inputs are byte-identical (no
	// randomness after setup/commitment).
	proof2, _, err := rel.Prove(a, b, ckA, ckB, comA, comB, comT)
	require.NoError(t, err)
	require.Equal(t, tripleBytes(proof.Steps[0].Com1), tripleBytes(proof2.Steps[0].Com1))
	require.True(t, proof.BaseA.Equal(proof2.BaseA))
	require.True(t, proof.BaseB.Equal(proof2.BaseB))
}

// TestMultiexponentiationCompleteness is spec.md §8's "multiexponentiation,
// n=8" scenario: AFGHO-G1 on the left, Pedersen-G1 on the right, the MSM
// inner product, Identity-folded output.
func TestMultiexponentiationCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	n := 8

	ckA, err := commitment.AFGHOG1{}.Setup(rng, n)
	require.NoError(t, err)
	ckB, err := commitment.PedersenG1{}.Setup(rng, n)
	require.NoError(t, err)

	a := make([]curve.G1, n)
	b := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		s, err := curve.RandomScalar(rng)
		require.NoError(t, err)
		a[i] = curve.GeneratorG1().ScalarMul(s)
		b[i], err = curve.RandomScalar(rng)
		require.NoError(t, err)
	}

	rel := Relation[curve.G1, curve.Scalar, curve.G1, curve.G2, curve.G1, curve.GT, curve.G1]{
		IP:  innerproduct.MultiexpG1{}.InnerProduct,
		LMC: commitment.AFGHOG1{},
		RMC: commitment.PedersenG1{},
	}

	comA, err := commitment.AFGHOG1{}.Commit(ckA, a)
	require.NoError(t, err)
	comB, err := commitment.PedersenG1{}.Commit(ckB, b)
	require.NoError(t, err)
	comT, err := rel.IP(a, b)
	require.NoError(t, err)

	proof, aux, err := rel.Prove(a, b, ckA, ckB, comA, comB, comT)
	require.NoError(t, err)

	ok, _, err := rel.Verify(aux.CKABase, aux.CKBBase, comA, comB, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestPairingProductCompleteness is spec.md §8's "pairing product, n=8"
// scenario: AFGHO-G1 on the left, AFGHO-G2 on the right, the pairing-product
// inner product.
func TestPairingProductCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	n := 8

	ckA, err := commitment.AFGHOG1{}.Setup(rng, n)
	require.NoError(t, err)
	ckB, err := commitment.AFGHOG2{}.Setup(rng, n)
	require.NoError(t, err)

	a := make([]curve.G1, n)
	b := make([]curve.G2, n)
	for i := 0; i < n; i++ {
		sa, err := curve.RandomScalar(rng)
		require.NoError(t, err)
		sb, err := curve.RandomScalar(rng)
		require.NoError(t, err)
		a[i] = curve.GeneratorG1().ScalarMul(sa)
		b[i] = curve.GeneratorG2().ScalarMul(sb)
	}

	rel := Relation[curve.G1, curve.G2, curve.GT, curve.G2, curve.G1, curve.GT, curve.GT]{
		IP:  innerproduct.Pairing{}.InnerProduct,
		LMC: commitment.AFGHOG1{},
		RMC: commitment.AFGHOG2{},
	}

	comA, err := commitment.AFGHOG1{}.Commit(ckA, a)
	require.NoError(t, err)
	comB, err := commitment.AFGHOG2{}.Commit(ckB, b)
	require.NoError(t, err)
	comT, err := rel.IP(a, b)
	require.NoError(t, err)

	proof, aux, err := rel.Prove(a, b, ckA, ckB, comA, comB, comT)
	require.NoError(t, err)

	ok, _, err := rel.Verify(aux.CKABase, aux.CKBBase, comA, comB, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)

	// A mutated proof byte (flipping the base element) causes verify to
	// return false rather than erroring.
	mutated := proof
	mutated.BaseA = mutated.BaseA.Add(curve.GeneratorG1())
	ok, _, err = rel.Verify(aux.CKABase, aux.CKBBase, comA, comB, comT, mutated)
	require.NoError(t, err)
	require.False(t, ok)
}
