package abc

import (
	"errors"
	"fmt"
	"testing"
)

// registerUser drives the full byte-level issuance round trip.
func registerUser(t *testing.T, pk, sk []byte, username, attributes string) []byte {
	t.Helper()
	req, state, err := PrepareRegistration(pk, username, attributes)
	if err != nil {
		t.Fatalf("PrepareRegistration: %v", err)
	}
	resp, err := Register(sk, req, username, attributes)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(resp) == 0 {
		t.Fatal("Register refused a valid request")
	}
	cred, err := ProceedRegistrationResponse(pk, resp, state)
	if err != nil {
		t.Fatalf("ProceedRegistrationResponse: %v", err)
	}
	return cred
}

func TestValidRun(t *testing.T) {
	pk, sk, err := GenerateCA("gym,spa,restaurant,bars")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}

	cred := registerUser(t, pk, sk, "bob", "gym,bars")

	message := []byte("46.52345,6.57890")
	sig, err := SignRequest(pk, cred, message, "gym")
	if err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	if !CheckRequestSignature(pk, message, "gym", sig) {
		t.Fatal("valid showing rejected")
	}
}

func TestRevealUnheldAttribute(t *testing.T) {
	pk, sk, err := GenerateCA("gym,spa,restaurant,bars")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}

	// registration with no attributes succeeds
	cred := registerUser(t, pk, sk, "bob", "")

	sig, err := SignRequest(pk, cred, []byte("46.52345,6.57890"), "restaurant")
	if err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	if CheckRequestSignature(pk, []byte("46.52345,6.57890"), "restaurant", sig) {
		t.Fatal("showing accepted for an attribute the credential does not hold")
	}
}

func TestLargeVocabulary(t *testing.T) {
	names := make([]string, 50)
	held := ""
	for i := range names {
		names[i] = fmt.Sprintf("attr%02d", i)
	}
	vocabList := names[0]
	for _, n := range names[1:] {
		vocabList += "," + n
	}
	// credential holds 10 of the 50
	for i := 0; i < 10; i++ {
		if i > 0 {
			held += ","
		}
		held += names[i*3]
	}

	pk, sk, err := GenerateCA(vocabList)
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	cred := registerUser(t, pk, sk, "alice", held)

	reveal := names[0] + "," + names[3] + "," + names[6]
	message := []byte("poi query")

	first, err := SignRequest(pk, cred, message, reveal)
	if err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	if !CheckRequestSignature(pk, message, reveal, first) {
		t.Fatal("valid showing over large vocabulary rejected")
	}

	second, err := SignRequest(pk, cred, message, reveal)
	if err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	firstSig, err := DecodeRequestSignature(first)
	if err != nil {
		t.Fatalf("DecodeRequestSignature: %v", err)
	}
	secondSig, err := DecodeRequestSignature(second)
	if err != nil {
		t.Fatalf("DecodeRequestSignature: %v", err)
	}
	if firstSig.Signature.Sigma1.Equal(&secondSig.Signature.Sigma1) {
		t.Error("two showings of the same credential share sigma1")
	}
}

func TestTamperedShowing(t *testing.T) {
	pk, sk, err := GenerateCA("gym,spa")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	cred := registerUser(t, pk, sk, "bob", "gym")

	message := []byte("tamper target")
	sig, err := SignRequest(pk, cred, message, "gym")
	if err != nil {
		t.Fatalf("SignRequest: %v", err)
	}

	// flip one byte inside sigma2~
	tampered := append([]byte{}, sig...)
	tampered[1+sizeG1+10] ^= 0x01
	if CheckRequestSignature(pk, message, "gym", tampered) {
		t.Fatal("tampered showing accepted")
	}
}

func TestShowingUnderWrongKey(t *testing.T) {
	pk, sk, err := GenerateCA("gym,spa")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	otherPK, _, err := GenerateCA("gym,spa")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	cred := registerUser(t, pk, sk, "bob", "gym")

	sig, err := SignRequest(pk, cred, []byte("msg"), "gym")
	if err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	if CheckRequestSignature(otherPK, []byte("msg"), "gym", sig) {
		t.Fatal("showing accepted under a freshly generated key")
	}
}

func TestRegisterUnknownAttribute(t *testing.T) {
	pk, sk, err := GenerateCA("gym,spa")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}

	req, state, err := PrepareRegistration(pk, "bob", "")
	if err != nil {
		t.Fatalf("PrepareRegistration: %v", err)
	}

	resp, err := Register(sk, req, "bob", "casino")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(resp) != 0 {
		t.Fatal("Register issued a signature for an unknown attribute")
	}

	if _, err := ProceedRegistrationResponse(pk, resp, state); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("got %v, want ErrEmptyResponse", err)
	}
}

func TestGenerateCARejectsEmptyVocabulary(t *testing.T) {
	if _, _, err := GenerateCA(""); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("got %v, want ErrEmptyVocabulary", err)
	}
}

func TestPrepareRegistrationRejectsUnknownAttribute(t *testing.T) {
	pk, _, err := GenerateCA("gym,spa")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	if _, _, err := PrepareRegistration(pk, "bob", "casino"); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("got %v, want ErrUnknownAttribute", err)
	}
}

func TestDuplicateAttributesNormalised(t *testing.T) {
	pk, sk, err := GenerateCA("gym,spa,bars")
	if err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}

	cred := registerUser(t, pk, sk, "bob", "gym,gym,bars")

	sig, err := SignRequest(pk, cred, []byte("msg"), "bars")
	if err != nil {
		t.Fatalf("SignRequest: %v", err)
	}
	if !CheckRequestSignature(pk, []byte("msg"), "bars", sig) {
		t.Fatal("showing rejected after duplicate-attribute registration")
	}
}
