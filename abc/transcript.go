package abc

import (
	"crypto/sha256"
	"math/big"
)

// challengeScalar derives the Fiat-Shamir challenge for a proof transcript.
// The hash input is the concatenation of the canonical encodings of every
// base in protocol order, then the prover's commitment, then the statement,
// then the 4-byte big-endian length of the optional message and the message
// itself. All element encodings are fixed-width per group and the message
// is length-prefixed, so no two transcript shapes collide.
//
// Prover and verifier must feed this function identical inputs; any
// divergence in base order is a different statement and yields a different
// challenge.
func challengeScalar(bases []Element, commitment, statement Element, message []byte) *big.Int {
	h := sha256.New()
	for _, base := range bases {
		h.Write(base.Bytes())
	}
	h.Write(commitment.Bytes())
	h.Write(statement.Bytes())
	h.Write(appendUint32(nil, uint32(len(message))))
	h.Write(message)

	c := new(big.Int).SetBytes(h.Sum(nil))
	return c.Mod(c, Order)
}
