package abc

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// The showing protocol proves, in GT, knowledge of the message vector under
// a re-randomised signature. The base list is built in a fixed order on
// both sides: e(sigma1~, g2) for the absorbed blinding, e(sigma1~, Y2_0)
// for the secret, then e(sigma1~, Y2_i) for every vocabulary coordinate
// that is not revealed. Hidden zero bits are proven like hidden one bits,
// so a verifier cannot tell absent attributes from undisclosed ones.

// showingBases builds the GT base list for a given randomised sigma1 and
// reveal set.
func showingBases(pk *PublicKey, sigma1 *bls12381.G1Affine, revealed []string) ([]Element, error) {
	_, _, _, g2 := bls12381.Generators()

	bases := make([]Element, 0, pk.Vocabulary.Len()+1)
	bt, err := pairGT(*sigma1, g2)
	if err != nil {
		return nil, err
	}
	bases = append(bases, bt)

	bs, err := pairGT(*sigma1, pk.Y2[0])
	if err != nil {
		return nil, err
	}
	bases = append(bases, bs)

	for i := 1; i < pk.Vocabulary.Len(); i++ {
		if contains(revealed, pk.Vocabulary.names[i]) {
			continue
		}
		bi, err := pairGT(*sigma1, pk.Y2[i])
		if err != nil {
			return nil, err
		}
		bases = append(bases, bi)
	}
	return bases, nil
}

// signShowing randomises the credential signature and proves knowledge of
// the hidden message coordinates, binding message into the challenge.
func signShowing(pk *PublicKey, cred *Credential, message []byte, revealed []string, rng io.Reader) (*RequestSignature, error) {
	if err := pk.Vocabulary.checkAttributes(revealed); err != nil {
		return nil, err
	}
	if err := pk.Vocabulary.checkAttributes(cred.Attributes); err != nil {
		return nil, err
	}

	r, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	tPrime, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	randomized := cred.Signature.randomize(r, tPrime)

	bases, err := showingBases(pk, &randomized.Sigma1, revealed)
	if err != nil {
		return nil, err
	}

	secrets := make([]*big.Int, 0, len(bases))
	secrets = append(secrets, tPrime, cred.Secret)
	for i := 1; i < pk.Vocabulary.Len(); i++ {
		name := pk.Vocabulary.names[i]
		if contains(revealed, name) {
			continue
		}
		if contains(cred.Attributes, name) {
			secrets = append(secrets, big.NewInt(1))
		} else {
			secrets = append(secrets, big.NewInt(0))
		}
	}

	proof, err := ProveKnowledge(rng, bases, secrets, message)
	if err != nil {
		return nil, err
	}

	return &RequestSignature{
		Signature:  *randomized,
		Commitment: mustGT(proof.Commitment).p,
		Responses:  proof.Responses,
	}, nil
}

// verifyShowing reconstructs the GT statement from the public key, the
// revealed attribute names and the randomised signature, then checks the
// Schnorr proof. The outcome is a single boolean; no detail about the
// failing check is exposed.
func verifyShowing(pk *PublicKey, message []byte, revealed []string, rs *RequestSignature) bool {
	if rs == nil || rs.Signature.Sigma1.IsInfinity() {
		return false
	}
	if pk.Vocabulary.checkAttributes(revealed) != nil {
		return false
	}

	_, _, _, g2 := bls12381.Generators()

	// Y = e(sigma2~, g2) / e(sigma1~, X2), then divide out the fixed bit 1
	// of every revealed coordinate.
	num, err := pairGT(rs.Signature.Sigma2, g2)
	if err != nil {
		return false
	}
	den, err := pairGT(rs.Signature.Sigma1, pk.X2)
	if err != nil {
		return false
	}
	statement := num.Op(invGT(den))

	for i := 1; i < pk.Vocabulary.Len(); i++ {
		if !contains(revealed, pk.Vocabulary.names[i]) {
			continue
		}
		f, err := pairGT(rs.Signature.Sigma1, pk.Y2[i])
		if err != nil {
			return false
		}
		statement = statement.Op(invGT(f))
	}

	bases, err := showingBases(pk, &rs.Signature.Sigma1, revealed)
	if err != nil {
		return false
	}

	proof := &SchnorrProof{
		Statement:  statement,
		Commitment: &gtElement{p: rs.Commitment},
		Responses:  rs.Responses,
	}
	return proof.Verify(bases, message)
}

// invGT inverts a GT element.
func invGT(e Element) Element {
	g := mustGT(e)
	var out gtElement
	out.p.Inverse(&g.p)
	return &out
}
