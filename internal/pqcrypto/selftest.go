package pqcrypto

import (
	"bytes"
	"fmt"
)

// KEMCheck is the outcome of a single encapsulation round trip.
type KEMCheck struct {
	Algorithm     string
	SecretsEqual  bool
	PublicKeyLen  int
	CiphertextLen int
	SecretLen     int
}

// SignatureCheck is the outcome of a single sign/verify round trip.
type SignatureCheck struct {
	Algorithm    string
	Valid        bool
	PublicKeyLen int
	SignatureLen int
}

// CheckKEM runs keygen, encapsulate and decapsulate once and compares the
// two shared secrets.
func CheckKEM(p Provider, name string) (*KEMCheck, error) {
	k, err := p.OpenKEM(name)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	pk, err := k.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	ct, ss1, err := k.Encapsulate(pk)
	if err != nil {
		return nil, err
	}
	ss2, err := k.Decapsulate(ct)
	if err != nil {
		return nil, err
	}
	return &KEMCheck{
		Algorithm:     name,
		SecretsEqual:  bytes.Equal(ss1, ss2),
		PublicKeyLen:  len(pk),
		CiphertextLen: len(ct),
		SecretLen:     len(ss1),
	}, nil
}

// CheckSignature signs message once and verifies the result.
func CheckSignature(p Provider, name string, message []byte) (*SignatureCheck, error) {
	s, err := p.OpenSignature(name)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	pk, err := s.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	sig, err := s.Sign(message)
	if err != nil {
		return nil, err
	}
	ok, err := s.Verify(message, sig, pk)
	if err != nil {
		return nil, fmt.Errorf("%s verify: %w", name, err)
	}
	return &SignatureCheck{
		Algorithm:    name,
		Valid:        ok,
		PublicKeyLen: len(pk),
		SignatureLen: len(sig),
	}, nil
}
