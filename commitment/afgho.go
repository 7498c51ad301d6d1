package commitment

import (
	"io"

	"github.com/tipa-crypto/go-tipa/curve"
)

// AFGHOG1 is the AFGHO pairing commitment with keys in G2 and messages in
// G1: Commit(k, m) = Prod_i e(m_i, k_i), a batched pairing (spec.md §4.1).
// It is the LMC used throughout TIPA (original_source/ip_proofs/src/tipa).
type AFGHOG1 struct{}

func (AFGHOG1) Setup(rng io.Reader, n int) ([]curve.G2, error) {
	return randomG2Vector(rng, n)
}

func (AFGHOG1) Commit(keys []curve.G2, msgs []curve.G1) (curve.GT, error) {
	return curve.MultiPairing(msgs, keys)
}

func (AFGHOG1) Verify(keys []curve.G2, msgs []curve.G1, com curve.GT) (bool, error) {
	got, err := curve.MultiPairing(msgs, keys)
	if err != nil {
		return false, err
	}
	return got.Equal(com), nil
}

// AFGHOG2 is the AFGHO pairing commitment with keys in G1 and messages in
// G2, the RMC counterpart of AFGHOG1.
type AFGHOG2 struct{}

func (AFGHOG2) Setup(rng io.Reader, n int) ([]curve.G1, error) {
	return randomG1Vector(rng, n)
}

func (AFGHOG2) Commit(keys []curve.G1, msgs []curve.G2) (curve.GT, error) {
	return curve.MultiPairing(keys, msgs)
}

func (AFGHOG2) Verify(keys []curve.G1, msgs []curve.G2, com curve.GT) (bool, error) {
	got, err := curve.MultiPairing(keys, msgs)
	if err != nil {
		return false, err
	}
	return got.Equal(com), nil
}
