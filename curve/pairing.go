package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Pairing computes e(a, b).
func Pairing(a G1, b G2) (GT, error) {
	raw, err := bls12381.Pair([]bls12381.G1Affine{a.Affine()}, []bls12381.G2Affine{b.Affine()})
	if err != nil {
		return GT{}, err
	}
	return GTFromRaw(raw), nil
}

// MultiPairing computes the pairing product Prod_i e(as[i], bs[i]) with a
// single (batched) Miller loop and final exponentiation. This is what backs
// PairingInnerProduct (C4) and the AFGHO commitments (C3): both are defined
// as a product of pairings.
func MultiPairing(as []G1, bs []G2) (GT, error) {
	if len(as) != len(bs) {
		return GT{}, ErrLengthMismatch
	}
	g1s := make([]bls12381.G1Affine, len(as))
	g2s := make([]bls12381.G2Affine, len(bs))
	for i := range as {
		g1s[i] = as[i].Affine()
		g2s[i] = bs[i].Affine()
	}
	raw, err := bls12381.Pair(g1s, g2s)
	if err != nil {
		return GT{}, err
	}
	return GTFromRaw(raw), nil
}
