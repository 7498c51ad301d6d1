package commitment

import (
	"io"

	"github.com/tipa-crypto/go-tipa/curve"
)

// PedersenG1 is the Pedersen commitment with keys and output in G1:
// Commit(k, m) = Sum_i m_i*k_i, an MSM (spec.md §4.1).
type PedersenG1 struct{}

func (PedersenG1) Setup(rng io.Reader, n int) ([]curve.G1, error) {
	return randomG1Vector(rng, n)
}

func (PedersenG1) Commit(keys []curve.G1, msgs []curve.Scalar) (curve.G1, error) {
	return curve.MSMG1(keys, msgs)
}

func (PedersenG1) Verify(keys []curve.G1, msgs []curve.Scalar, com curve.G1) (bool, error) {
	got, err := curve.MSMG1(keys, msgs)
	if err != nil {
		return false, err
	}
	return got.Equal(com), nil
}

// PedersenG2 is the Pedersen commitment with keys and output in G2.
type PedersenG2 struct{}

func (PedersenG2) Setup(rng io.Reader, n int) ([]curve.G2, error) {
	return randomG2Vector(rng, n)
}

func (PedersenG2) Commit(keys []curve.G2, msgs []curve.Scalar) (curve.G2, error) {
	return curve.MSMG2(keys, msgs)
}

func (PedersenG2) Verify(keys []curve.G2, msgs []curve.Scalar, com curve.G2) (bool, error) {
	got, err := curve.MSMG2(keys, msgs)
	if err != nil {
		return false, err
	}
	return got.Equal(com), nil
}

func randomG1Vector(rng io.Reader, n int) ([]curve.G1, error) {
	out := make([]curve.G1, n)
	for i := range out {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		out[i] = curve.GeneratorG1().ScalarMul(s)
	}
	return out, nil
}

func randomG2Vector(rng io.Reader, n int) ([]curve.G2, error) {
	out := make([]curve.G2, n)
	for i := range out {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		out[i] = curve.GeneratorG2().ScalarMul(s)
	}
	return out, nil
}
