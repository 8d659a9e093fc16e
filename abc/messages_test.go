package abc

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestIssuanceRequestEncodeDecode(t *testing.T) {
	_, pk := testKey(t, "gym,spa")

	req, _, err := prepareRegistration(pk, []string{"gym"}, rand.Reader)
	if err != nil {
		t.Fatalf("prepareRegistration: %v", err)
	}

	enc := req.Encode()
	dec, err := DecodeIssuanceRequest(enc)
	if err != nil {
		t.Fatalf("DecodeIssuanceRequest: %v", err)
	}
	if !bytes.Equal(dec.Encode(), enc) {
		t.Error("issuance request round trip not canonical")
	}
	if !dec.Commitment.Equal(&req.Commitment) || !dec.R.Equal(&req.R) {
		t.Error("group elements differ after round trip")
	}
	if dec.Zt.Cmp(req.Zt) != 0 || dec.Zs.Cmp(req.Zs) != 0 {
		t.Error("responses differ after round trip")
	}
}

func TestIssuanceResponseEncodeDecode(t *testing.T) {
	sk, pk := testKey(t, "gym,spa")

	req, _, err := prepareRegistration(pk, []string{"gym"}, rand.Reader)
	if err != nil {
		t.Fatalf("prepareRegistration: %v", err)
	}
	resp, err := register(sk, req, []string{"gym"}, rand.Reader)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	enc := resp.Encode()
	dec, err := DecodeIssuanceResponse(enc)
	if err != nil {
		t.Fatalf("DecodeIssuanceResponse: %v", err)
	}
	if !bytes.Equal(dec.Encode(), enc) {
		t.Error("issuance response round trip not canonical")
	}
}

func TestRequestSignatureEncodeDecode(t *testing.T) {
	sk, pk := testKey(t, "gym,spa,bars")
	cred := issueCredential(t, sk, pk, []string{"gym", "bars"})

	rs, err := signShowing(pk, cred, []byte("msg"), []string{"gym"}, rand.Reader)
	if err != nil {
		t.Fatalf("signShowing: %v", err)
	}

	enc := rs.Encode()
	dec, err := DecodeRequestSignature(enc)
	if err != nil {
		t.Fatalf("DecodeRequestSignature: %v", err)
	}
	if !bytes.Equal(dec.Encode(), enc) {
		t.Error("request signature round trip not canonical")
	}
	if len(dec.Responses) != len(rs.Responses) {
		t.Errorf("response count %d after round trip, want %d", len(dec.Responses), len(rs.Responses))
	}
	if !verifyShowing(pk, []byte("msg"), []string{"gym"}, dec) {
		t.Error("decoded showing no longer verifies")
	}
}

func TestCredentialEncodeDecode(t *testing.T) {
	sk, pk := testKey(t, "gym,spa")
	cred := issueCredential(t, sk, pk, []string{"gym"})

	enc := cred.Encode()
	dec, err := DecodeCredential(enc)
	if err != nil {
		t.Fatalf("DecodeCredential: %v", err)
	}
	if !bytes.Equal(dec.Encode(), enc) {
		t.Error("credential round trip not canonical")
	}

	m := messageVector(pk.Vocabulary, dec.Secret, dec.Attributes)
	if !dec.Signature.Verify(pk, m) {
		t.Error("decoded credential signature does not verify")
	}
}

func TestDecodeRejectsBadWireData(t *testing.T) {
	_, pk := testKey(t, "gym")
	req, _, err := prepareRegistration(pk, nil, rand.Reader)
	if err != nil {
		t.Fatalf("prepareRegistration: %v", err)
	}
	enc := req.Encode()

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"bad version", append([]byte{0x00}, enc[1:]...)},
		{"truncated", enc[:len(enc)-5]},
		{"trailing", append(append([]byte{}, enc...), 0xAA)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := DecodeIssuanceRequest(test.data); !errors.Is(err, ErrInvalidMessageData) {
				t.Errorf("got %v, want ErrInvalidMessageData", err)
			}
		})
	}

	if _, err := DecodeRequestSignature([]byte{wireVersion, 1, 2, 3}); !errors.Is(err, ErrInvalidMessageData) {
		t.Errorf("short showing: got %v, want ErrInvalidMessageData", err)
	}
	if _, err := DecodeCredential([]byte{0x02}); !errors.Is(err, ErrInvalidCredentialData) {
		t.Errorf("bad credential version: got %v, want ErrInvalidCredentialData", err)
	}
}

func TestScalarWireWidth(t *testing.T) {
	s, _ := randomScalar(rand.Reader)
	b := appendScalar(nil, s)
	if len(b) != sizeScalar {
		t.Fatalf("scalar encodes to %d bytes, want %d", len(b), sizeScalar)
	}

	r := &wireReader{buf: b}
	dec, ok := r.scalar()
	if !ok || dec.Cmp(s) != 0 {
		t.Fatal("scalar round trip failed")
	}
}
