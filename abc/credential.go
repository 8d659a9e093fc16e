package abc

import "math/big"

// Credential is the user's attribute-based credential: the long-term
// secret, the normalised attribute set it was issued on, and the unblinded
// PS signature over the derived message vector. It is stored by the user
// and never persisted by the issuer.
type Credential struct {
	Secret     *big.Int
	Attributes []string
	Signature  Signature
}

// messageVector derives the canonical PS message vector for a credential:
// slot 0 is the secret, slot i >= 1 is 1 when the vocabulary attribute is
// held and 0 otherwise. Both protocol sides must build this vector from the
// same vocabulary order.
func messageVector(vocab *Vocabulary, secret *big.Int, held []string) []*big.Int {
	m := make([]*big.Int, vocab.Len())
	m[0] = secret
	for i := 1; i < vocab.Len(); i++ {
		if contains(held, vocab.names[i]) {
			m[i] = big.NewInt(1)
		} else {
			m[i] = big.NewInt(0)
		}
	}
	return m
}

// Encode serialises the credential: version, secret, attribute names,
// signature.
func (c *Credential) Encode() []byte {
	out := []byte{wireVersion}
	out = appendScalar(out, c.Secret)
	out = appendUint32(out, uint32(len(c.Attributes)))
	for _, name := range c.Attributes {
		out = appendString(out, name)
	}
	return appendSignature(out, &c.Signature)
}

// DecodeCredential parses a credential produced by Encode.
func DecodeCredential(data []byte) (*Credential, error) {
	r := &wireReader{buf: data}
	if !r.version() {
		return nil, ErrInvalidCredentialData
	}
	c := &Credential{}
	var ok bool
	if c.Secret, ok = r.scalar(); !ok {
		return nil, ErrInvalidCredentialData
	}
	count, ok := r.uint32()
	if !ok || count > uint32(len(r.buf)) {
		return nil, ErrInvalidCredentialData
	}
	c.Attributes = make([]string, count)
	for i := range c.Attributes {
		if c.Attributes[i], ok = r.string(); !ok {
			return nil, ErrInvalidCredentialData
		}
	}
	if c.Signature, ok = readSignature(r); !ok {
		return nil, ErrInvalidCredentialData
	}
	if !r.done() {
		return nil, ErrInvalidCredentialData
	}
	return c, nil
}
