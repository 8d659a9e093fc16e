package abc

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SecretKey is the issuer's Pointcheval-Sanders signing key over a fixed
// vocabulary. It is immutable after creation and never leaves the issuer.
type SecretKey struct {
	X *big.Int   // x
	Y []*big.Int // y_0..y_{L-1}, one per vocabulary slot

	// X1 = g1^x, kept alongside x because blind signing multiplies it into
	// the user's commitment.
	X1 bls12381.G1Affine

	Vocabulary *Vocabulary
}

// PublicKey is the issuer's public key. X2 lives in G2; the Y generators
// are published in both source groups, as issuance commits in G1 while
// showing proves in GT through G2 pairings.
type PublicKey struct {
	X2 bls12381.G2Affine
	Y1 []bls12381.G1Affine
	Y2 []bls12381.G2Affine

	Vocabulary *Vocabulary
}

// GenerateKey samples a fresh issuer key over the vocabulary.
func GenerateKey(vocab *Vocabulary, rng io.Reader) (*SecretKey, error) {
	if vocab == nil || vocab.Len() == 0 {
		return nil, ErrEmptyVocabulary
	}

	x, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	y := make([]*big.Int, vocab.Len())
	for i := range y {
		y[i], err = randomScalar(rng)
		if err != nil {
			return nil, err
		}
	}

	sk := &SecretKey{X: x, Y: y, Vocabulary: vocab}
	_, _, g1, _ := bls12381.Generators()
	sk.X1.ScalarMultiplication(&g1, x)
	return sk, nil
}

// PublicKey derives the public key from the secret key.
func (sk *SecretKey) PublicKey() *PublicKey {
	_, _, g1, g2 := bls12381.Generators()

	pk := &PublicKey{
		Y1:         make([]bls12381.G1Affine, len(sk.Y)),
		Y2:         make([]bls12381.G2Affine, len(sk.Y)),
		Vocabulary: sk.Vocabulary,
	}
	pk.X2.ScalarMultiplication(&g2, sk.X)
	for i, y := range sk.Y {
		pk.Y1[i].ScalarMultiplication(&g1, y)
		pk.Y2[i].ScalarMultiplication(&g2, y)
	}
	return pk
}

// Encode serialises the secret key: version, vocabulary, x, y vector.
func (sk *SecretKey) Encode() []byte {
	out := []byte{wireVersion}
	out = appendVocabulary(out, sk.Vocabulary)
	out = appendScalar(out, sk.X)
	for _, y := range sk.Y {
		out = appendScalar(out, y)
	}
	return out
}

// DecodeSecretKey parses a secret key produced by Encode.
func DecodeSecretKey(data []byte) (*SecretKey, error) {
	r := &wireReader{buf: data}
	if !r.version() {
		return nil, ErrInvalidKeyData
	}
	vocab, ok := readVocabulary(r)
	if !ok {
		return nil, ErrInvalidKeyData
	}
	x, ok := r.scalar()
	if !ok {
		return nil, ErrInvalidKeyData
	}
	y := make([]*big.Int, vocab.Len())
	for i := range y {
		y[i], ok = r.scalar()
		if !ok {
			return nil, ErrInvalidKeyData
		}
	}
	if !r.done() {
		return nil, ErrInvalidKeyData
	}

	sk := &SecretKey{X: x, Y: y, Vocabulary: vocab}
	_, _, g1, _ := bls12381.Generators()
	sk.X1.ScalarMultiplication(&g1, x)
	return sk, nil
}

// Encode serialises the public key: version, vocabulary, X2, Y1, Y2.
func (pk *PublicKey) Encode() []byte {
	out := []byte{wireVersion}
	out = appendVocabulary(out, pk.Vocabulary)
	out = appendG2(out, &pk.X2)
	for i := range pk.Y1 {
		out = appendG1(out, &pk.Y1[i])
	}
	for i := range pk.Y2 {
		out = appendG2(out, &pk.Y2[i])
	}
	return out
}

// DecodePublicKey parses a public key produced by Encode.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	r := &wireReader{buf: data}
	if !r.version() {
		return nil, ErrInvalidKeyData
	}
	vocab, ok := readVocabulary(r)
	if !ok {
		return nil, ErrInvalidKeyData
	}

	pk := &PublicKey{
		Y1:         make([]bls12381.G1Affine, vocab.Len()),
		Y2:         make([]bls12381.G2Affine, vocab.Len()),
		Vocabulary: vocab,
	}
	if pk.X2, ok = r.g2(); !ok {
		return nil, ErrInvalidKeyData
	}
	for i := range pk.Y1 {
		if pk.Y1[i], ok = r.g1(); !ok {
			return nil, ErrInvalidKeyData
		}
	}
	for i := range pk.Y2 {
		if pk.Y2[i], ok = r.g2(); !ok {
			return nil, ErrInvalidKeyData
		}
	}
	if !r.done() {
		return nil, ErrInvalidKeyData
	}
	return pk, nil
}

func appendVocabulary(b []byte, v *Vocabulary) []byte {
	b = appendUint32(b, uint32(len(v.names)))
	for _, name := range v.names {
		b = appendString(b, name)
	}
	return b
}

func readVocabulary(r *wireReader) (*Vocabulary, bool) {
	count, ok := r.uint32()
	if !ok || count < 2 {
		return nil, false
	}
	names := make([]string, count)
	for i := range names {
		if names[i], ok = r.string(); !ok {
			return nil, false
		}
	}
	if names[0] != ReservedAttribute {
		return nil, false
	}
	vocab, err := NewVocabulary(names[1:])
	if err != nil {
		return nil, false
	}
	return vocab, true
}
