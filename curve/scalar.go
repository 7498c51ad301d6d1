// Package curve wraps the BLS12-381 group and field types from gnark-crypto
// behind a small, uniform, value-typed API so that the generic abstractions
// in package group can be written once and monomorphized per instantiation.
package curve

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the BLS12-381 scalar field F_r.
type Scalar struct {
	v fr.Element
}

// ZeroScalar is the additive identity of F_r.
func ZeroScalar() Scalar {
	return Scalar{}
}

// OneScalar is the multiplicative identity of F_r.
func OneScalar() Scalar {
	var s Scalar
	s.v.SetOne()
	return s
}

// ScalarFromUint64 lifts a small integer into F_r.
func ScalarFromUint64(x uint64) Scalar {
	var s Scalar
	s.v.SetUint64(x)
	return s
}

// RandomScalar draws a uniform field element from rng. rng need not be
// crypto/rand: setup in tests uses a seeded deterministic source, exactly as
// original_source's `StdRng::seed_from_u64(0)` does. 64 bytes are sampled so
// that the reduction mod r (a ~255 bit prime) introduces negligible bias.
func RandomScalar(rng io.Reader) (Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Scalar{}, err
	}
	var s Scalar
	s.v.SetBytes(buf[:])
	return s, nil
}

// Add returns a + b.
func (a Scalar) Add(b Scalar) Scalar {
	var r Scalar
	r.v.Add(&a.v, &b.v)
	return r
}

// Sub returns a - b.
func (a Scalar) Sub(b Scalar) Scalar {
	var r Scalar
	r.v.Sub(&a.v, &b.v)
	return r
}

// Neg returns -a.
func (a Scalar) Neg() Scalar {
	var r Scalar
	r.v.Neg(&a.v)
	return r
}

// Mul returns a * b.
func (a Scalar) Mul(b Scalar) Scalar {
	var r Scalar
	r.v.Mul(&a.v, &b.v)
	return r
}

// ScalarMul implements group.Element[Scalar]: scalar action on a scalar
// message is just field multiplication.
func (a Scalar) ScalarMul(b Scalar) Scalar {
	return a.Mul(b)
}

// Square returns a * a.
func (a Scalar) Square() Scalar {
	var r Scalar
	r.v.Square(&a.v)
	return r
}

// Inverse returns (1/a, true), or (0, false) if a is zero.
func (a Scalar) Inverse() (Scalar, bool) {
	if a.v.IsZero() {
		return Scalar{}, false
	}
	var r Scalar
	r.v.Inverse(&a.v)
	return r, true
}

// Exp returns a^e.
func (a Scalar) Exp(e uint64) Scalar {
	var r Scalar
	r.v.Exp(a.v, new(big.Int).SetUint64(e))
	return r
}

// IsZero reports whether a is the additive identity.
func (a Scalar) IsZero() bool {
	return a.v.IsZero()
}

// IsIdentity implements group.Element[Scalar] (additive identity).
func (a Scalar) IsIdentity() bool {
	return a.IsZero()
}

// Equal reports field equality.
func (a Scalar) Equal(b Scalar) bool {
	return a.v.Equal(&b.v)
}

// Bytes returns the canonical big-endian encoding, used both for wire
// serialization and as Fiat-Shamir hash input (spec's "canonical byte form").
func (a Scalar) Bytes() []byte {
	b := a.v.Bytes()
	return b[:]
}

// FromRandomBytesRejection is the capability named in spec.md §6:
// `from_random_bytes(bytes) -> Option<F>`. It rejects raw digest output that
// does not represent a canonical field element, which is the precondition
// the Fiat-Shamir rejection-sampling loop in gipa/tipa relies upon.
func FromRandomBytesRejection(b []byte) (Scalar, bool) {
	if len(b) < fr.Bytes {
		return Scalar{}, false
	}
	var asBig big.Int
	asBig.SetBytes(b[:fr.Bytes])
	if asBig.Cmp(fr.Modulus()) >= 0 {
		return Scalar{}, false
	}
	var s Scalar
	s.v.SetBigInt(&asBig)
	return s, true
}

// BigInt returns the regular (non-Montgomery) big.Int representation.
func (a Scalar) BigInt() *big.Int {
	var out big.Int
	a.v.BigInt(&out)
	return &out
}
