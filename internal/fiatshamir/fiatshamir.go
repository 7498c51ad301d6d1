// Package fiatshamir derives the non-interactive challenges consumed by
// packages gipa and tipa. Every challenge is produced by hashing a
// big-endian counter together with a transcript of serialized group
// elements under Blake2b and rejection-sampling the digest into a field
// element, mirroring original_source's `D::digest(&hash_input)` /
// `Scalar::from_random_bytes` loop (gipa/src/lib.rs, ip_proofs/src/tipa/mod.rs).
package fiatshamir

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/tipa-crypto/go-tipa/curve"
)

// Hash digests counter (big-endian uint64) followed by parts, in order,
// under Blake2b-512.
func Hash(counter uint64, parts ...[]byte) []byte {
	h, _ := blake2b.New512(nil)
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)
	h.Write(counterBytes[:])
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// GIPARound derives a GIPA recursion-step challenge and its inverse from
// the running transcript scalar and the round's two cross commitments
// (each serialized as concatenated bytes), incrementing the counter nonce
// until the digest both represents a canonical field element and is
// invertible. original_source/gipa/src/lib.rs's counter_nonce is a `let`
// (never incremented) rather than a `mut`, which would retry the same
// hash forever on rejection; the distilled round description (spec's
// GIPA recursion step 3) is explicit that the counter increments on
// rejection, so that corrected behavior is implemented here rather than
// the source's dead retry loop.
func GIPARound(transcript curve.Scalar, com1, com2 []byte) (c, cInv curve.Scalar, ok bool) {
	var counter uint64
	for {
		digest := Hash(counter, transcript.Bytes(), com1, com2)
		if cand, ok := curve.FromRandomBytesRejection(digest); ok {
			if inv, invertible := cand.Inverse(); invertible {
				return cand, inv, true
			}
		}
		counter++
		if counter > 1<<20 {
			return curve.Scalar{}, curve.Scalar{}, false
		}
	}
}

// KZGChallenge derives TIPA's evaluation-point challenge from the first
// transcript entry and the two final commitment keys, incrementing the
// counter nonce across rejections (ip_proofs/src/tipa/mod.rs lines 174-188).
func KZGChallenge(transcriptFirst curve.Scalar, ckAFinal, ckBFinal []byte) curve.Scalar {
	var counter uint64
	for {
		digest := Hash(counter, transcriptFirst.Bytes(), ckAFinal, ckBFinal)
		if c, ok := curve.FromRandomBytesRejection(digest); ok {
			return c
		}
		counter++
	}
}
