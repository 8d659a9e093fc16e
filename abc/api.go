package abc

import (
	"crypto/rand"
	"errors"
)

// Byte-oriented API surface. Every function operates on the canonical wire
// encodings so that the enclosing transport can carry opaque byte strings.
// The username parameters are accepted for API compatibility; they play no
// role in the cryptographic core.

// GenerateCA initialises the credential system for a comma-separated list
// of attribute names, returning the encoded public and secret keys. An
// empty list is rejected.
func GenerateCA(validAttributes string) ([]byte, []byte, error) {
	vocab, err := ParseVocabulary(validAttributes)
	if err != nil {
		return nil, nil, err
	}
	sk, err := GenerateKey(vocab, rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return sk.PublicKey().Encode(), sk.Encode(), nil
}

// PrepareRegistration builds an issuance request for the given attributes
// and returns it together with the opaque state needed to finalize.
func PrepareRegistration(publicKey []byte, username, attributes string) ([]byte, []byte, error) {
	pk, err := DecodePublicKey(publicKey)
	if err != nil {
		return nil, nil, err
	}
	_ = username

	req, st, err := prepareRegistration(pk, SplitAttributeList(attributes), rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return req.Encode(), st.Encode(), nil
}

// Register processes an issuance request on the issuer side. A request
// carrying an unknown attribute or a failing proof is refused with an empty
// response; malformed inputs surface as errors.
func Register(secretKey, issuanceRequest []byte, username, attributes string) ([]byte, error) {
	sk, err := DecodeSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	req, err := DecodeIssuanceRequest(issuanceRequest)
	if err != nil {
		return nil, err
	}
	_ = username

	resp, err := register(sk, req, SplitAttributeList(attributes), rand.Reader)
	if err != nil {
		if errors.Is(err, ErrUnknownAttribute) || errors.Is(err, ErrReservedAttribute) || errors.Is(err, ErrInvalidProof) {
			return []byte{}, nil
		}
		return nil, err
	}
	return resp.Encode(), nil
}

// ProceedRegistrationResponse unblinds and verifies the issuer's response
// and returns the encoded credential. An empty response, meaning the issuer
// refused the registration, is an error.
func ProceedRegistrationResponse(publicKey, response, state []byte) ([]byte, error) {
	if len(response) == 0 {
		return nil, ErrEmptyResponse
	}
	pk, err := DecodePublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	resp, err := DecodeIssuanceResponse(response)
	if err != nil {
		return nil, err
	}
	st, err := DecodeRegistrationState(state)
	if err != nil {
		return nil, err
	}

	cred, err := finalizeRegistration(pk, resp, st)
	if err != nil {
		return nil, err
	}
	return cred.Encode(), nil
}

// SignRequest authenticates message with the credential, revealing the
// comma-separated attributes and hiding everything else.
func SignRequest(publicKey, credential, message []byte, revealed string) ([]byte, error) {
	pk, err := DecodePublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	cred, err := DecodeCredential(credential)
	if err != nil {
		return nil, err
	}

	rs, err := signShowing(pk, cred, message, SplitAttributeList(revealed), rand.Reader)
	if err != nil {
		return nil, err
	}
	return rs.Encode(), nil
}

// CheckRequestSignature verifies a showing against the revealed attributes
// and message. The outcome is a single boolean: malformed bytes, unknown
// attribute names and failing proofs are all reported as false.
func CheckRequestSignature(publicKey, message []byte, revealed string, signature []byte) bool {
	pk, err := DecodePublicKey(publicKey)
	if err != nil {
		return false
	}
	rs, err := DecodeRequestSignature(signature)
	if err != nil {
		return false
	}
	return verifyShowing(pk, message, SplitAttributeList(revealed), rs)
}
