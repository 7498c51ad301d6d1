// Package commitment implements the doubly-homomorphic commitment
// abstraction (spec.md §4.1, component C1) and its concrete instantiations
// (component C3): Pedersen, the two AFGHO pairing commitments, and the
// trivial Identity commitment.
package commitment

import (
	"io"

	"github.com/tipa-crypto/go-tipa/curve"
	"github.com/tipa-crypto/go-tipa/group"
)

// Scheme is a doubly homomorphic commitment: Setup produces independent
// keys, Commit is bilinear in (keys, messages), Verify recomputes and
// compares. K, M, O are each required to be an abelian group with scalar
// action (group.Element), which is the only property GIPA's folding
// relies upon.
type Scheme[K group.Element[K], M group.Element[M], O group.Element[O]] interface {
	Setup(rng io.Reader, n int) ([]K, error)
	Commit(keys []K, msgs []M) (O, error)
	Verify(keys []K, msgs []M, com O) (bool, error)
}

// Placeholder is the unit group used as the Identity commitment's key type,
// the Go rendering of original_source's HomomorphicPlaceholderValue: the key
// carries no information and Identity.Commit ignores it entirely.
type Placeholder struct{}

func (Placeholder) Add(Placeholder) Placeholder        { return Placeholder{} }
func (Placeholder) Neg() Placeholder                   { return Placeholder{} }
func (Placeholder) ScalarMul(curve.Scalar) Placeholder { return Placeholder{} }
func (Placeholder) Equal(Placeholder) bool             { return true }
func (Placeholder) IsIdentity() bool                   { return true }
