package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1 is a point of the BLS12-381 G1 group, held in Jacobian form so repeated
// Add/ScalarMul during GIPA folding stay cheap.
type G1 struct {
	v bls12381.G1Jac
}

// GeneratorG1 returns the fixed generator of G1.
func GeneratorG1() G1 {
	_, _, g1Aff, _ := bls12381.Generators()
	var g G1
	g.v.FromAffine(&g1Aff)
	return g
}

// IdentityG1 returns the identity element of G1.
func IdentityG1() G1 {
	return G1{}
}

// Add returns a + b.
func (a G1) Add(b G1) G1 {
	var r G1
	r.v.Set(&a.v)
	r.v.AddAssign(&b.v)
	return r
}

// Neg returns -a.
func (a G1) Neg() G1 {
	var r G1
	r.v.Neg(&a.v)
	return r
}

// Sub returns a - b.
func (a G1) Sub(b G1) G1 {
	return a.Add(b.Neg())
}

// ScalarMul returns s*a.
func (a G1) ScalarMul(s Scalar) G1 {
	var r G1
	r.v.ScalarMultiplication(&a.v, s.BigInt())
	return r
}

// Equal reports point equality (subgroup elements, including identity).
func (a G1) Equal(b G1) bool {
	return a.v.Equal(&b.v)
}

// IsIdentity reports whether a is the point at infinity.
func (a G1) IsIdentity() bool {
	var aff bls12381.G1Affine
	aff.FromJacobian(&a.v)
	return aff.IsInfinity()
}

// Affine returns the affine representation, used at pairing/MSM/serialization
// boundaries where gnark-crypto requires it.
func (a G1) Affine() bls12381.G1Affine {
	var aff bls12381.G1Affine
	aff.FromJacobian(&a.v)
	return aff
}

// G1FromAffine lifts an affine point (e.g. from an MSM or SRS slice).
func G1FromAffine(aff bls12381.G1Affine) G1 {
	var g G1
	g.v.FromAffine(&aff)
	return g
}

// Bytes returns the compressed affine encoding.
func (a G1) Bytes() []byte {
	aff := a.Affine()
	b := aff.Bytes()
	return b[:]
}
