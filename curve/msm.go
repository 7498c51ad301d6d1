package curve

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// MSMG1 computes the variable-base multi-scalar multiplication
// Sum_i scalars[i]*bases[i] using gnark-crypto's optimized MSM kernel. This
// backs Pedersen-over-G1 commitments (C3) and the MultiexponentiationInnerProduct
// (C4): both are literally defined as an MSM.
func MSMG1(bases []G1, scalars []Scalar) (G1, error) {
	if len(bases) != len(scalars) {
		return G1{}, ErrLengthMismatch
	}
	affs := make([]bls12381.G1Affine, len(bases))
	frs := make([]fr.Element, len(scalars))
	for i := range bases {
		affs[i] = bases[i].Affine()
		frs[i] = scalars[i].v
	}
	var res bls12381.G1Affine
	if _, err := res.MultiExp(affs, frs, ecc.MultiExpConfig{}); err != nil {
		return G1{}, err
	}
	return G1FromAffine(res), nil
}

// MSMG2 is the G2 analog of MSMG1.
func MSMG2(bases []G2, scalars []Scalar) (G2, error) {
	if len(bases) != len(scalars) {
		return G2{}, ErrLengthMismatch
	}
	affs := make([]bls12381.G2Affine, len(bases))
	frs := make([]fr.Element, len(scalars))
	for i := range bases {
		affs[i] = bases[i].Affine()
		frs[i] = scalars[i].v
	}
	var res bls12381.G2Affine
	if _, err := res.MultiExp(affs, frs, ecc.MultiExpConfig{}); err != nil {
		return G2{}, err
	}
	return G2FromAffine(res), nil
}
