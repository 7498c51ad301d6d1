package commitment

import (
	"errors"
	"io"

	"github.com/tipa-crypto/go-tipa/group"
)

// ErrIdentitySetup is returned by Identity.Setup, which should never be
// called: the identity commitment's key carries no information, so any
// caller that needs n keys can use a slice of n Placeholder values directly.
var ErrIdentitySetup = errors.New("commitment: Identity.Setup has no meaningful keys, use a Placeholder slice")

// Identity is the trivial commitment Commit(_, m) = Sum(m): it ignores its
// keys entirely and folds the messages with the group operation. It is
// always the IPC (inner-product commitment) in every TIPA instantiation
// (original_source/ip_proofs/src/tipa/mod.rs's test module), which is why
// package tipa hardcodes it rather than taking it as a type parameter.
type Identity[T group.Element[T]] struct {
	Zero T
}

func (id Identity[T]) Setup(rng io.Reader, n int) ([]Placeholder, error) {
	return nil, ErrIdentitySetup
}

func (id Identity[T]) Commit(keys []Placeholder, msgs []T) (T, error) {
	return group.Sum(id.Zero, msgs), nil
}

func (id Identity[T]) Verify(keys []Placeholder, msgs []T, com T) (bool, error) {
	got := group.Sum(id.Zero, msgs)
	return got.Equal(com), nil
}
