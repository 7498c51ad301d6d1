package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G2 is a point of the BLS12-381 G2 group, held in Jacobian form.
type G2 struct {
	v bls12381.G2Jac
}

// GeneratorG2 returns the fixed generator of G2.
func GeneratorG2() G2 {
	_, _, _, g2Aff := bls12381.Generators()
	var g G2
	g.v.FromAffine(&g2Aff)
	return g
}

// IdentityG2 returns the identity element of G2.
func IdentityG2() G2 {
	return G2{}
}

// Add returns a + b.
func (a G2) Add(b G2) G2 {
	var r G2
	r.v.Set(&a.v)
	r.v.AddAssign(&b.v)
	return r
}

// Neg returns -a.
func (a G2) Neg() G2 {
	var r G2
	r.v.Neg(&a.v)
	return r
}

// Sub returns a - b.
func (a G2) Sub(b G2) G2 {
	return a.Add(b.Neg())
}

// ScalarMul returns s*a.
func (a G2) ScalarMul(s Scalar) G2 {
	var r G2
	r.v.ScalarMultiplication(&a.v, s.BigInt())
	return r
}

// Equal reports point equality.
func (a G2) Equal(b G2) bool {
	return a.v.Equal(&b.v)
}

// IsIdentity reports whether a is the point at infinity.
func (a G2) IsIdentity() bool {
	var aff bls12381.G2Affine
	aff.FromJacobian(&a.v)
	return aff.IsInfinity()
}

// Affine returns the affine representation.
func (a G2) Affine() bls12381.G2Affine {
	var aff bls12381.G2Affine
	aff.FromJacobian(&a.v)
	return aff
}

// G2FromAffine lifts an affine point.
func G2FromAffine(aff bls12381.G2Affine) G2 {
	var g G2
	g.v.FromAffine(&aff)
	return g
}

// Bytes returns the compressed affine encoding.
func (a G2) Bytes() []byte {
	aff := a.Affine()
	b := aff.Bytes()
	return b[:]
}
