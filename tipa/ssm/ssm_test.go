package ssm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tipa-crypto/go-tipa/commitment"
	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/innerproduct"
	"github.com/tipa-crypto/go-tipa/tipa"
)

func TestStructuredScalarPowers(t *testing.T) {
	r := curve.ScalarFromUint64(3)
	got := StructuredScalarPowers(4, r)
	require.Len(t, got, 4)
	require.True(t, got[0].Equal(curve.OneScalar()))
	require.True(t, got[1].Equal(curve.ScalarFromUint64(3)))
	require.True(t, got[2].Equal(curve.ScalarFromUint64(9)))
	require.True(t, got[3].Equal(curve.ScalarFromUint64(27)))
}

func testRelation() Relation[curve.G1, curve.GT, curve.G1] {
	return Relation[curve.G1, curve.GT, curve.G1]{
		IP:  innerproduct.MultiexpG1{}.InnerProduct,
		LMC: commitment.AFGHOG1{},
	}
}

func randomG1s(rng *rand.Rand, n int) []curve.G1 {
	out := make([]curve.G1, n)
	g := curve.GeneratorG1()
	for i := range out {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			panic(err)
		}
		out[i] = g.ScalarMul(s)
	}
	return out
}

// TestProveVerifyRoundTrip exercises ProveWithSSM/VerifyWithSSM end to end:
// a is a random G1 vector, the right-hand message is never built or
// committed by the caller at all, only the public scalar r. This is
// FoldedValue's real call site, inside VerifyWithSSM.
func TestProveVerifyRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 8

	srs, err := tipa.Setup(rng, n)
	require.NoError(t, err)
	ckA, _ := srs.GetCommitmentKeys()

	a := randomG1s(rng, n)
	r, err := curve.RandomScalar(rng)
	require.NoError(t, err)
	b := StructuredScalarPowers(n, r)

	rel := testRelation()
	comA, err := commitment.AFGHOG1{}.Commit(ckA, a)
	require.NoError(t, err)
	comT, err := innerproduct.MultiexpG1{}.InnerProduct(a, b)
	require.NoError(t, err)

	proof, err := rel.ProveWithSSM(srs, a, r, ckA, comA, comT)
	require.NoError(t, err)

	vsrs := srs.GetVerifierKey()
	ok, err := rel.VerifyWithSSM(vsrs, r, comA, comT, proof)
	require.NoError(t, err)
	require.True(t, ok)

	// A wrong r must not verify: VerifyWithSSM recomputes the folded
	// right-hand value from r itself, so a mismatched r desyncs the
	// base-case inner-product check without touching the proof at all.
	wrongR := r.Add(curve.OneScalar())
	ok, err = rel.VerifyWithSSM(vsrs, wrongR, comA, comT, proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProveWithSSMRejectsLengthMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	srs, err := tipa.Setup(rng, 4)
	require.NoError(t, err)
	ckA, _ := srs.GetCommitmentKeys()

	rel := testRelation()
	a := randomG1s(rng, 3) // not a power of two
	r, err := curve.RandomScalar(rng)
	require.NoError(t, err)

	_, err = rel.ProveWithSSM(srs, a, r, ckA, curve.GT{}, curve.G1{})
	require.ErrorIs(t, err, ErrMessageLengthInvalid)
}
