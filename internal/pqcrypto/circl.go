package pqcrypto

import (
	"fmt"

	"github.com/cloudflare/circl/kem"
	kemschemes "github.com/cloudflare/circl/kem/schemes"
	"github.com/cloudflare/circl/sign"
	signschemes "github.com/cloudflare/circl/sign/schemes"
)

// CirclProvider serves algorithms from the circl scheme registries.
type CirclProvider struct{}

func NewCirclProvider() *CirclProvider {
	return &CirclProvider{}
}

// EnabledKEMs returns the registered KEM names in registry order.
func (p *CirclProvider) EnabledKEMs() []string {
	all := kemschemes.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name())
	}
	return names
}

// EnabledSignatures returns the registered signature names in registry order.
func (p *CirclProvider) EnabledSignatures() []string {
	all := signschemes.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Name())
	}
	return names
}

func (p *CirclProvider) OpenKEM(name string) (KEM, error) {
	s := kemschemes.ByName(name)
	if s == nil {
		return nil, fmt.Errorf("kem %q: %w", name, ErrUnknownAlgorithm)
	}
	return &circlKEM{scheme: s}, nil
}

func (p *CirclProvider) OpenSignature(name string) (Signer, error) {
	s := signschemes.ByName(name)
	if s == nil {
		return nil, fmt.Errorf("signature %q: %w", name, ErrUnknownAlgorithm)
	}
	return &circlSigner{scheme: s}, nil
}

type circlKEM struct {
	scheme kem.Scheme
	sk     kem.PrivateKey
	closed bool
}

func (k *circlKEM) Name() string { return k.scheme.Name() }

func (k *circlKEM) GenerateKeypair() ([]byte, error) {
	if k.closed {
		return nil, ErrHandleClosed
	}
	pk, sk, err := k.scheme.GenerateKeyPair()
	if err != nil {
		return nil, fmt.Errorf("%s keygen: %w", k.Name(), err)
	}
	k.sk = sk
	return pk.MarshalBinary()
}

func (k *circlKEM) Encapsulate(publicKey []byte) ([]byte, []byte, error) {
	if k.closed {
		return nil, nil, ErrHandleClosed
	}
	pk, err := k.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%s encaps: %w", k.Name(), err)
	}
	ct, ss, err := k.scheme.Encapsulate(pk)
	if err != nil {
		return nil, nil, fmt.Errorf("%s encaps: %w", k.Name(), err)
	}
	return ct, ss, nil
}

func (k *circlKEM) Decapsulate(ciphertext []byte) ([]byte, error) {
	if k.closed {
		return nil, ErrHandleClosed
	}
	if k.sk == nil {
		return nil, ErrNoKeypair
	}
	ss, err := k.scheme.Decapsulate(k.sk, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%s decaps: %w", k.Name(), err)
	}
	return ss, nil
}

func (k *circlKEM) Close() error {
	k.sk = nil
	k.closed = true
	return nil
}

type circlSigner struct {
	scheme sign.Scheme
	sk     sign.PrivateKey
	closed bool
}

func (s *circlSigner) Name() string { return s.scheme.Name() }

func (s *circlSigner) GenerateKeypair() ([]byte, error) {
	if s.closed {
		return nil, ErrHandleClosed
	}
	pk, sk, err := s.scheme.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("%s keygen: %w", s.Name(), err)
	}
	s.sk = sk
	return pk.MarshalBinary()
}

func (s *circlSigner) Sign(message []byte) ([]byte, error) {
	if s.closed {
		return nil, ErrHandleClosed
	}
	if s.sk == nil {
		return nil, ErrNoKeypair
	}
	return s.scheme.Sign(s.sk, message, nil), nil
}

func (s *circlSigner) Verify(message, signature, publicKey []byte) (bool, error) {
	if s.closed {
		return false, ErrHandleClosed
	}
	pk, err := s.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("%s verify: %w", s.Name(), err)
	}
	return s.scheme.Verify(pk, message, signature, nil), nil
}

func (s *circlSigner) Close() error {
	s.sk = nil
	s.closed = true
	return nil
}
