package abc

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Signature is a Pointcheval-Sanders signature (sigma1, sigma2), both in G1.
// The same type carries the blinded form returned by the issuer, the
// unblinded credential signature, and the re-randomised form sent in a
// showing.
type Signature struct {
	Sigma1 bls12381.G1Affine
	Sigma2 bls12381.G1Affine
}

// Sign produces a PS signature on a full message vector. The protocols
// below sign blinded commitments instead; direct signing exists for key
// validation and tests of the underlying scheme.
func Sign(sk *SecretKey, messages []*big.Int, rng io.Reader) (*Signature, error) {
	if len(messages) != len(sk.Y) {
		return nil, ErrMismatchedLengths
	}

	u, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}

	// sigma1 = g1^u, sigma2 = sigma1^(x + sum y_i m_i)
	exp := new(big.Int).Set(sk.X)
	for i, m := range messages {
		exp = modAdd(exp, modMul(sk.Y[i], m))
	}

	_, _, g1, _ := bls12381.Generators()
	var sig Signature
	sig.Sigma1.ScalarMultiplication(&g1, u)
	sig.Sigma2.ScalarMultiplication(&sig.Sigma1, exp)
	return &sig, nil
}

// Verify checks the PS pairing equation
//
//	e(sigma1, X2 * prod Y2_i^{m_i}) == e(sigma2, g2)
//
// It returns false on shape mismatch or a degenerate sigma1 and never
// reports a reason.
func (sig *Signature) Verify(pk *PublicKey, messages []*big.Int) bool {
	if sig == nil || len(messages) != len(pk.Y2) {
		return false
	}
	if sig.Sigma1.IsInfinity() {
		return false
	}

	// Q = X2 * prod Y2_i^{m_i}
	var q bls12381.G2Jac
	q.FromAffine(&pk.X2)
	var tmp bls12381.G2Jac
	for i, m := range messages {
		if m.Sign() == 0 {
			continue
		}
		tmp.FromAffine(&pk.Y2[i])
		tmp.ScalarMultiplication(&tmp, reduceScalar(m))
		q.AddAssign(&tmp)
	}
	var qAff bls12381.G2Affine
	qAff.FromJacobian(&q)

	// e(sigma1, Q) * e(-sigma2, g2) == 1
	var sigma2Neg bls12381.G1Affine
	sigma2Neg.Neg(&sig.Sigma2)

	_, _, _, g2 := bls12381.Generators()
	result, err := bls12381.Pair(
		[]bls12381.G1Affine{sig.Sigma1, sigma2Neg},
		[]bls12381.G2Affine{qAff, g2},
	)
	if err != nil {
		return false
	}
	return result.IsOne()
}

// blindSign signs a user commitment plus the issuer-assigned attribute bits:
// sigma1 = g1^u, sigma2 = (X1 * C * prod_{i>=1} Y1_i^{b_i})^u. The bits
// vector is indexed by vocabulary position and bits[0] is ignored, as slot 0
// is covered by the commitment.
func blindSign(sk *SecretKey, pk *PublicKey, commitment *bls12381.G1Affine, bits []uint, rng io.Reader) (*Signature, error) {
	u, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}

	var base bls12381.G1Jac
	base.FromAffine(&sk.X1)
	var tmp bls12381.G1Jac
	tmp.FromAffine(commitment)
	base.AddAssign(&tmp)
	for i := 1; i < len(bits); i++ {
		if bits[i] == 0 {
			continue
		}
		tmp.FromAffine(&pk.Y1[i])
		base.AddAssign(&tmp)
	}

	base.ScalarMultiplication(&base, u)

	var sig Signature
	_, _, g1, _ := bls12381.Generators()
	sig.Sigma1.ScalarMultiplication(&g1, u)
	sig.Sigma2.FromJacobian(&base)
	return &sig, nil
}

// unblind strips the user's blinding factor: sigma2' = sigma2 / sigma1^t.
func (sig *Signature) unblind(t *big.Int) *Signature {
	var blind bls12381.G1Affine
	blind.ScalarMultiplication(&sig.Sigma1, reduceScalar(t))
	blind.Neg(&blind)

	var acc bls12381.G1Jac
	acc.FromAffine(&sig.Sigma2)
	var tmp bls12381.G1Jac
	tmp.FromAffine(&blind)
	acc.AddAssign(&tmp)

	out := &Signature{Sigma1: sig.Sigma1}
	out.Sigma2.FromJacobian(&acc)
	return out
}

// randomize re-randomises the signature for a showing:
//
//	sigma1~ = sigma1^r, sigma2~ = (sigma2 * sigma1^t)^r
//
// Fresh (r, t) make the pair unlinkable to the issued signature and to any
// other showing; t is absorbed into the proven message vector.
func (sig *Signature) randomize(r, t *big.Int) *Signature {
	var acc bls12381.G1Jac
	acc.FromAffine(&sig.Sigma2)
	var tmp bls12381.G1Jac
	tmp.FromAffine(&sig.Sigma1)
	tmp.ScalarMultiplication(&tmp, reduceScalar(t))
	acc.AddAssign(&tmp)
	acc.ScalarMultiplication(&acc, reduceScalar(r))

	out := &Signature{}
	out.Sigma1.ScalarMultiplication(&sig.Sigma1, reduceScalar(r))
	out.Sigma2.FromJacobian(&acc)
	return out
}

func appendSignature(b []byte, sig *Signature) []byte {
	b = appendG1(b, &sig.Sigma1)
	return appendG1(b, &sig.Sigma2)
}

func readSignature(r *wireReader) (Signature, bool) {
	var sig Signature
	var ok bool
	if sig.Sigma1, ok = r.g1(); !ok {
		return sig, false
	}
	if sig.Sigma2, ok = r.g1(); !ok {
		return sig, false
	}
	return sig, true
}
