package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GT is an element of the pairing target group, the degree-12 extension
// field. The group is written multiplicatively by gnark-crypto; this type
// exposes it through the same additive-notation Element[T] surface as G1/G2,
// per the spec's "additive notation for all groups" convention: Add is field
// multiplication, ScalarMul is exponentiation.
type GT struct {
	v bls12381.GT
}

// IdentityGT returns the multiplicative identity (additive zero).
func IdentityGT() GT {
	var g GT
	g.v.SetOne()
	return g
}

// Add returns a (*) b (the GT group operation).
func (a GT) Add(b GT) GT {
	var r GT
	r.v.Mul(&a.v, &b.v)
	return r
}

// Neg returns a^-1.
func (a GT) Neg() GT {
	var r GT
	r.v.Inverse(&a.v)
	return r
}

// ScalarMul returns a^s.
func (a GT) ScalarMul(s Scalar) GT {
	var r GT
	r.v.Exp(a.v, s.BigInt())
	return r
}

// Equal reports equality.
func (a GT) Equal(b GT) bool {
	return a.v.Equal(&b.v)
}

// IsIdentity reports whether a is the multiplicative identity.
func (a GT) IsIdentity() bool {
	return a.v.IsOne()
}

// Bytes returns the canonical encoding.
func (a GT) Bytes() []byte {
	b := a.v.Bytes()
	return b[:]
}

// GTFromRaw wraps a raw gnark-crypto GT value (e.g. a pairing result).
func GTFromRaw(v bls12381.GT) GT {
	return GT{v}
}
