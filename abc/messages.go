package abc

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Wire-level carriers for the two protocol round trips. Each encodes to a
// versioned, deterministic byte string; the transport carries the raw
// bytes.

// IssuanceRequest is the user's registration message: the commitment
// C = g1^t * Y1_0^s and a Schnorr proof (R, z_t, z_s) of knowledge of
// (t, s). The public attribute names travel alongside the request, not
// inside it.
type IssuanceRequest struct {
	Commitment bls12381.G1Affine // C
	R          bls12381.G1Affine // Schnorr commitment
	Zt         *big.Int          // response for the blinding factor t
	Zs         *big.Int          // response for the user secret s
}

// Encode serialises the request.
func (req *IssuanceRequest) Encode() []byte {
	out := []byte{wireVersion}
	out = appendG1(out, &req.Commitment)
	out = appendG1(out, &req.R)
	out = appendScalar(out, req.Zt)
	out = appendScalar(out, req.Zs)
	return out
}

// DecodeIssuanceRequest parses an issuance request.
func DecodeIssuanceRequest(data []byte) (*IssuanceRequest, error) {
	r := &wireReader{buf: data}
	if !r.version() {
		return nil, ErrInvalidMessageData
	}
	req := &IssuanceRequest{}
	var ok bool
	if req.Commitment, ok = r.g1(); !ok {
		return nil, ErrInvalidMessageData
	}
	if req.R, ok = r.g1(); !ok {
		return nil, ErrInvalidMessageData
	}
	if req.Zt, ok = r.scalar(); !ok {
		return nil, ErrInvalidMessageData
	}
	if req.Zs, ok = r.scalar(); !ok {
		return nil, ErrInvalidMessageData
	}
	if !r.done() {
		return nil, ErrInvalidMessageData
	}
	return req, nil
}

// IssuanceResponse carries the issuer's blinded signature back to the user.
type IssuanceResponse struct {
	Blinded Signature
}

// Encode serialises the response.
func (resp *IssuanceResponse) Encode() []byte {
	out := []byte{wireVersion}
	return appendSignature(out, &resp.Blinded)
}

// DecodeIssuanceResponse parses an issuance response.
func DecodeIssuanceResponse(data []byte) (*IssuanceResponse, error) {
	r := &wireReader{buf: data}
	if !r.version() {
		return nil, ErrInvalidMessageData
	}
	resp := &IssuanceResponse{}
	var ok bool
	if resp.Blinded, ok = readSignature(r); !ok {
		return nil, ErrInvalidMessageData
	}
	if !r.done() {
		return nil, ErrInvalidMessageData
	}
	return resp, nil
}

// RequestSignature is a showing: the re-randomised signature, the GT-side
// Schnorr commitment, and the response vector. The statement is not
// carried; the verifier reconstructs it from the public key and the
// revealed attribute names.
type RequestSignature struct {
	Signature  Signature
	Commitment bls12381.GT
	Responses  []*big.Int
}

// Encode serialises the showing.
func (rs *RequestSignature) Encode() []byte {
	out := []byte{wireVersion}
	out = appendSignature(out, &rs.Signature)
	out = appendGT(out, &rs.Commitment)
	out = appendUint32(out, uint32(len(rs.Responses)))
	for _, z := range rs.Responses {
		out = appendScalar(out, z)
	}
	return out
}

// DecodeRequestSignature parses a showing.
func DecodeRequestSignature(data []byte) (*RequestSignature, error) {
	r := &wireReader{buf: data}
	if !r.version() {
		return nil, ErrInvalidMessageData
	}
	rs := &RequestSignature{}
	var ok bool
	if rs.Signature, ok = readSignature(r); !ok {
		return nil, ErrInvalidMessageData
	}
	if rs.Commitment, ok = r.gt(); !ok {
		return nil, ErrInvalidMessageData
	}
	count, ok := r.uint32()
	if !ok || count == 0 || count > uint32(len(r.buf)/sizeScalar) {
		return nil, ErrInvalidMessageData
	}
	rs.Responses = make([]*big.Int, count)
	for i := range rs.Responses {
		if rs.Responses[i], ok = r.scalar(); !ok {
			return nil, ErrInvalidMessageData
		}
	}
	if !r.done() {
		return nil, ErrInvalidMessageData
	}
	return rs, nil
}
