// Package innerproduct implements the three inner-product instantiations
// GIPA/TIPA fold over (spec.md §4.1, component C4): the scalar dot product,
// the multiexponentiation (MSM), and the pairing product.
package innerproduct

import (
	"github.com/tipa-crypto/go-tipa/curve"
)

// Scalar computes <a,b> = Sum a_i*b_i in F. Grounded on
// original_source/dh_commitments/src/afgho16/mod.rs's ScalarInnerProduct.
type Scalar struct{}

func (Scalar) InnerProduct(a, b []curve.Scalar) (curve.Scalar, error) {
	if len(a) != len(b) {
		return curve.Scalar{}, curve.ErrLengthMismatch
	}
	acc := curve.ZeroScalar()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc, nil
}

// MultiexpG1 computes <P,s> = Sum s_i*P_i in G1, i.e. an MSM.
type MultiexpG1 struct{}

func (MultiexpG1) InnerProduct(bases []curve.G1, scalars []curve.Scalar) (curve.G1, error) {
	return curve.MSMG1(bases, scalars)
}

// MultiexpG2 is the G2 analog of MultiexpG1.
type MultiexpG2 struct{}

func (MultiexpG2) InnerProduct(bases []curve.G2, scalars []curve.Scalar) (curve.G2, error) {
	return curve.MSMG2(bases, scalars)
}

// Pairing computes <A,B> = Prod e(A_i,B_i) in Gt, the batched pairing
// product used as TIPA's top-level relation for the PairingTIPA
// instantiation.
type Pairing struct{}

func (Pairing) InnerProduct(a []curve.G1, b []curve.G2) (curve.GT, error) {
	return curve.MultiPairing(a, b)
}
