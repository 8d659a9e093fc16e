package abc

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// RegistrationState is the user's private state between prepare and
// finalize: the credential secret, the normalised attribute set, and the
// blinding factor. Its encoding is opaque to the issuer and carries nothing
// else.
type RegistrationState struct {
	Secret     *big.Int
	Attributes []string
	Blinding   *big.Int
}

// Encode serialises the state as an opaque buffer.
func (st *RegistrationState) Encode() []byte {
	out := []byte{wireVersion}
	out = appendScalar(out, st.Secret)
	out = appendScalar(out, st.Blinding)
	out = appendUint32(out, uint32(len(st.Attributes)))
	for _, name := range st.Attributes {
		out = appendString(out, name)
	}
	return out
}

// DecodeRegistrationState parses a state buffer produced by Encode.
func DecodeRegistrationState(data []byte) (*RegistrationState, error) {
	r := &wireReader{buf: data}
	if !r.version() {
		return nil, ErrInvalidStateData
	}
	st := &RegistrationState{}
	var ok bool
	if st.Secret, ok = r.scalar(); !ok {
		return nil, ErrInvalidStateData
	}
	if st.Blinding, ok = r.scalar(); !ok {
		return nil, ErrInvalidStateData
	}
	count, ok := r.uint32()
	if !ok || count > uint32(len(r.buf)) {
		return nil, ErrInvalidStateData
	}
	st.Attributes = make([]string, count)
	for i := range st.Attributes {
		if st.Attributes[i], ok = r.string(); !ok {
			return nil, ErrInvalidStateData
		}
	}
	if !r.done() {
		return nil, ErrInvalidStateData
	}
	return st, nil
}

// issuanceBases returns the Schnorr bases of the registration proof, in
// protocol order: (g1, Y1_0).
func issuanceBases(pk *PublicKey) []Element {
	_, _, g1, _ := bls12381.Generators()
	return []Element{
		&g1Element{p: g1},
		&g1Element{p: pk.Y1[0]},
	}
}

// prepareRegistration samples the credential secret s and blinding t, forms
// the commitment C = g1^t * Y1_0^s and proves knowledge of (t, s). The
// attribute names are validated against the vocabulary, not normalised
// here (SplitAttributeList does that at the byte API), and travel outside
// the proof.
func prepareRegistration(pk *PublicKey, attributes []string, rng io.Reader) (*IssuanceRequest, *RegistrationState, error) {
	if err := pk.Vocabulary.checkAttributes(attributes); err != nil {
		return nil, nil, err
	}

	s, err := randomScalar(rng)
	if err != nil {
		return nil, nil, err
	}
	t, err := randomScalar(rng)
	if err != nil {
		return nil, nil, err
	}

	proof, err := ProveKnowledge(rng, issuanceBases(pk), []*big.Int{t, s}, nil)
	if err != nil {
		return nil, nil, err
	}

	req := &IssuanceRequest{
		Commitment: mustG1(proof.Statement).p,
		R:          mustG1(proof.Commitment).p,
		Zt:         proof.Responses[0],
		Zs:         proof.Responses[1],
	}
	st := &RegistrationState{Secret: s, Attributes: attributes, Blinding: t}
	return req, st, nil
}

// register is the issuer side: it validates the requested attributes
// against the vocabulary, verifies the proof of knowledge behind the
// commitment, and blind-signs the commitment together with the attribute
// bitmap.
func register(sk *SecretKey, req *IssuanceRequest, attributes []string, rng io.Reader) (*IssuanceResponse, error) {
	if err := sk.Vocabulary.checkAttributes(attributes); err != nil {
		return nil, err
	}

	pk := sk.PublicKey()
	proof := &SchnorrProof{
		Statement:  &g1Element{p: req.Commitment},
		Commitment: &g1Element{p: req.R},
		Responses:  []*big.Int{req.Zt, req.Zs},
	}
	if !proof.Verify(issuanceBases(pk), nil) {
		return nil, ErrInvalidProof
	}

	bits := make([]uint, sk.Vocabulary.Len())
	for i := 1; i < sk.Vocabulary.Len(); i++ {
		if contains(attributes, sk.Vocabulary.names[i]) {
			bits[i] = 1
		}
	}

	sig, err := blindSign(sk, pk, &req.Commitment, bits, rng)
	if err != nil {
		return nil, err
	}
	return &IssuanceResponse{Blinded: *sig}, nil
}

// finalizeRegistration unblinds the issuer's signature and verifies it
// against the message vector derived from the state. A signature that does
// not verify means a misbehaving issuer (or a vocabulary mismatch) and the
// issuance is rejected.
func finalizeRegistration(pk *PublicKey, resp *IssuanceResponse, st *RegistrationState) (*Credential, error) {
	sig := resp.Blinded.unblind(st.Blinding)

	m := messageVector(pk.Vocabulary, st.Secret, st.Attributes)
	if !sig.Verify(pk, m) {
		return nil, ErrInvalidSignature
	}

	return &Credential{
		Secret:     st.Secret,
		Attributes: st.Attributes,
		Signature:  *sig,
	}, nil
}
