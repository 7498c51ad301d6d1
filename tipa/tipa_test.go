package tipa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tipa-crypto/go-tipa/commitment"
	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/innerproduct"
)

func pairingRelation() Relation[curve.G1, curve.G2, curve.GT, curve.GT, curve.GT] {
	return Relation[curve.G1, curve.G2, curve.GT, curve.GT, curve.GT]{
		IP:  innerproduct.Pairing{}.InnerProduct,
		LMC: commitment.AFGHOG1{},
		RMC: commitment.AFGHOG2{},
	}
}

// TestPairingProductCompleteness is spec.md §8's "pairing product, n=8"
// scenario run through the full TIPA engine (GIPA recursion plus the two
// KZG well-formedness proofs), spec.md §8 law 1.
func TestPairingProductCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	n := 8

	srs, err := Setup(rng, n)
	require.NoError(t, err)
	ckA, ckB := srs.GetCommitmentKeys()
	vsrs := srs.GetVerifierKey()

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

	rel := pairingRelation()
	comA, err := commitment.AFGHOG1{}.Commit(ckA, a)
	require.NoError(t, err)
	comB, err := commitment.AFGHOG2{}.Commit(ckB, b)
	require.NoError(t, err)
	comT, err := rel.IP(a, b)
	require.NoError(t, err)

	proof, err := rel.Prove(srs, a, b, ckA, ckB, comA, comB, comT)
	require.NoError(t, err)

	ok, err := rel.Verify(vsrs, commitment.Placeholder{}, comA, comB, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestSRSShift is spec.md §8 law 5: proving/verifying with a matching
// r_shift succeeds; verifying with the wrong shift fails.
func TestSRSShift(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	n := 8

	srs, err := Setup(rng, n)
	require.NoError(t, err)
	ckA, ckB := srs.GetCommitmentKeys()
	vsrs := srs.GetVerifierKey()

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

	r, err := curve.RandomScalar(rng)
	require.NoError(t, err)
	rInv, ok := r.Inverse()
	require.True(t, ok)

	// a_r[i] = r^i * a[i], ck_a_r[i] = r^-i * ck_a[i]
	aShifted := make([]curve.G1, n)
	ckAShifted := make([]curve.G2, n)
	rPow := curve.OneScalar()
	rPowInv := curve.OneScalar()
	for i := 0; i < n; i++ {
		aShifted[i] = a[i].ScalarMul(rPow)
		ckAShifted[i] = ckA[i].ScalarMul(rPowInv)
		rPow = rPow.Mul(r)
		rPowInv = rPowInv.Mul(rInv)
	}

	rel := pairingRelation()
	comA, err := commitment.AFGHOG1{}.Commit(ckAShifted, aShifted)
	require.NoError(t, err)
	comB, err := commitment.AFGHOG2{}.Commit(ckB, b)
	require.NoError(t, err)
	comT, err := rel.IP(aShifted, b)
	require.NoError(t, err)

	proof, err := rel.ProveWithSRSShift(srs, aShifted, b, ckAShifted, ckB, comA, comB, comT, r)
	require.NoError(t, err)

	ok, err = rel.VerifyWithSRSShift(vsrs, comA, comB, comT, proof, r)
	require.NoError(t, err)
	require.True(t, ok, "verification with the correct shift must succeed")

	wrongR, err := curve.RandomScalar(rng)
	require.NoError(t, err)
	ok, err = rel.VerifyWithSRSShift(vsrs, comA, comB, comT, proof, wrongR)
	require.NoError(t, err)
	require.False(t, ok, "verification with the wrong shift must fail")
}

func TestSetupRejectsNonPositiveSize(t *testing.T) {
	_, err := Setup(rand.New(rand.NewSource(0)), 0)
	require.ErrorIs(t, err, ErrSizeTooSmall)
}

func TestGetCommitmentKeysAreEvenIndexed(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	srs, err := Setup(rng, 4)
	require.NoError(t, err)
	ckA, ckB := srs.GetCommitmentKeys()
	require.Len(t, ckA, 4)
	require.Len(t, ckB, 4)
	require.True(t, ckA[1].Equal(srs.HBetaPowers[2]))
	require.True(t, ckB[1].Equal(srs.GAlphaPowers[2]))
}
