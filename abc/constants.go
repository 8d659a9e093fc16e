// Package abc implements an attribute-based credential scheme built on
// Pointcheval-Sanders signatures over the BLS12-381 pairing groups.
//
// An issuer generates a key pair bound to a fixed vocabulary of attribute
// names. A user registers by committing to a long-term secret and proving
// knowledge of it; the issuer blind-signs the commitment together with the
// bitmap of the user's attributes. The user can later authenticate a message
// while revealing any subset of the issued attributes, re-randomising the
// signature so that different showings cannot be linked.
package abc

import (
	"errors"
	"math/big"
)

var (
	// ErrEmptyVocabulary is returned when a key is requested over zero attributes
	ErrEmptyVocabulary = errors.New("vocabulary must contain at least one attribute")

	// ErrDuplicateAttribute is returned when a vocabulary contains the same name twice
	ErrDuplicateAttribute = errors.New("duplicate attribute name")

	// ErrReservedAttribute is returned when a user attribute list names the secret slot
	ErrReservedAttribute = errors.New("attribute name is reserved")

	// ErrUnknownAttribute is returned when an attribute is not part of the vocabulary
	ErrUnknownAttribute = errors.New("attribute not in vocabulary")

	// ErrInvalidProof is returned when a zero-knowledge proof fails verification
	ErrInvalidProof = errors.New("invalid proof of knowledge")

	// ErrInvalidSignature is returned when the pairing equation does not hold
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrMissingSecrets is returned when a prover API is invoked without secrets
	ErrMissingSecrets = errors.New("prover called without secrets")

	// ErrMismatchedLengths is returned when bases and exponent vectors disagree in size
	ErrMismatchedLengths = errors.New("mismatched bases and exponents")

	// ErrEmptyResponse is returned when finalizing a refused registration
	ErrEmptyResponse = errors.New("empty registration response")

	// ErrInvalidKeyData is returned when key bytes cannot be decoded
	ErrInvalidKeyData = errors.New("invalid key data")

	// ErrInvalidMessageData is returned when wire bytes cannot be decoded
	ErrInvalidMessageData = errors.New("invalid message data")

	// ErrInvalidStateData is returned when registration state bytes cannot be decoded
	ErrInvalidStateData = errors.New("invalid registration state data")

	// ErrInvalidCredentialData is returned when credential bytes cannot be decoded
	ErrInvalidCredentialData = errors.New("invalid credential data")
)

// Order of the groups G1, G2, and GT for BLS12-381
// BLS12-381 curve order: 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001
var Order, _ = new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// Canonical encoded sizes: compressed curve points and fixed-width scalars.
const (
	sizeG1     = 48
	sizeG2     = 96
	sizeGT     = 576
	sizeScalar = 32
)

// wireVersion prefixes every serialised message for forward compatibility.
const wireVersion byte = 0x01
