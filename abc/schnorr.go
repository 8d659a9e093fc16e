package abc

import (
	"io"
	"math/big"
)

// SchnorrProof is a non-interactive generalised Schnorr proof of knowledge
// of exponents x_1..x_k such that Statement = prod bases[i]^x_i, with the
// challenge derived by Fiat-Shamir over the transcript. All bases, the
// commitment and the statement live in a single group.
type SchnorrProof struct {
	Statement  Element
	Commitment Element
	Responses  []*big.Int
}

// ProveKnowledge builds a proof of knowledge of secrets over the given
// bases, binding the optional message into the challenge. The statement is
// computed from the secrets.
//
// Calling the prover without secrets, or with a secret count that does not
// match the bases, is a programmer error and reported as such; it is never
// masked as a proof failure.
func ProveKnowledge(rng io.Reader, bases []Element, secrets []*big.Int, message []byte) (*SchnorrProof, error) {
	if len(secrets) == 0 {
		return nil, ErrMissingSecrets
	}
	if len(bases) != len(secrets) {
		return nil, ErrMismatchedLengths
	}

	statement := bases[0].Exp(secrets[0])
	for i := 1; i < len(bases); i++ {
		statement = statement.Op(bases[i].Exp(secrets[i]))
	}

	nonces := make([]*big.Int, len(bases))
	for i := range nonces {
		r, err := randomScalar(rng)
		if err != nil {
			return nil, err
		}
		nonces[i] = r
	}

	commitment := bases[0].Exp(nonces[0])
	for i := 1; i < len(bases); i++ {
		commitment = commitment.Op(bases[i].Exp(nonces[i]))
	}

	c := challengeScalar(bases, commitment, statement, message)

	responses := make([]*big.Int, len(bases))
	for i := range responses {
		responses[i] = modAdd(nonces[i], modMul(c, secrets[i]))
	}

	return &SchnorrProof{
		Statement:  statement,
		Commitment: commitment,
		Responses:  responses,
	}, nil
}

// Verify recomputes the Fiat-Shamir challenge and checks the proof equation
//
//	Commitment * Statement^c == prod bases[i]^Responses[i]
//
// It returns false on any shape mismatch; verification never reports why it
// failed.
func (p *SchnorrProof) Verify(bases []Element, message []byte) bool {
	if p == nil || p.Statement == nil || p.Commitment == nil {
		return false
	}
	if len(bases) == 0 || len(p.Responses) != len(bases) {
		return false
	}
	group := p.Statement.Group()
	if p.Commitment.Group() != group {
		return false
	}
	for _, base := range bases {
		if base.Group() != group {
			return false
		}
	}
	for _, z := range p.Responses {
		if z == nil {
			return false
		}
	}

	c := challengeScalar(bases, p.Commitment, p.Statement, message)

	lhs := p.Commitment.Op(p.Statement.Exp(c))
	rhs := bases[0].Exp(p.Responses[0])
	for i := 1; i < len(bases); i++ {
		rhs = rhs.Op(bases[i].Exp(p.Responses[i]))
	}

	return lhs.Equal(rhs)
}
