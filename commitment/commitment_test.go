package commitment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tipa-crypto/go-tipa/curve"
)

func TestPedersenG1CommitVerify(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	keys, err := PedersenG1{}.Setup(rng, 8)
	require.NoError(t, err)

	msgs := make([]curve.Scalar, 8)
	for i := range msgs {
		s, err := curve.RandomScalar(rng)
		require.NoError(t, err)
		msgs[i] = s
	}

	com, err := PedersenG1{}.Commit(keys, msgs)
	require.NoError(t, err)

	ok, err := PedersenG1{}.Verify(keys, msgs, com)
	require.NoError(t, err)
	require.True(t, ok)

	msgs[3] = msgs[3].Add(curve.OneScalar())
	ok, err = PedersenG1{}.Verify(keys, msgs, com)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAFGHOG1CommitVerify(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	keys, err := AFGHOG1{}.Setup(rng, 8)
	require.NoError(t, err)

	msgs := make([]curve.G1, 8)
	for i := range msgs {
		s, err := curve.RandomScalar(rng)
		require.NoError(t, err)
		msgs[i] = curve.GeneratorG1().ScalarMul(s)
	}

	com, err := AFGHOG1{}.Commit(keys, msgs)
	require.NoError(t, err)

	ok, err := AFGHOG1{}.Verify(keys, msgs, com)
	require.NoError(t, err)
	require.True(t, ok)

	msgs[0] = msgs[0].Add(curve.GeneratorG1())
	ok, err = AFGHOG1{}.Verify(keys, msgs, com)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIdentityCommitVerify(t *testing.T) {
	id := Identity[curve.G1]{Zero: curve.IdentityG1()}
	msgs := []curve.G1{curve.GeneratorG1(), curve.GeneratorG1().ScalarMul(curve.ScalarFromUint64(2))}
	keys := []Placeholder{{}, {}}

	com, err := id.Commit(keys, msgs)
	require.NoError(t, err)
	require.True(t, com.Equal(curve.GeneratorG1().ScalarMul(curve.ScalarFromUint64(3))))

	ok, err := id.Verify(keys, msgs, com)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = id.Setup(rand.New(rand.NewSource(0)), 2)
	require.ErrorIs(t, err, ErrIdentitySetup)
}
