// Package pqcrypto exposes the narrow set of post-quantum capabilities the
// benchmark harness needs, independent of the library that implements them.
//
// Handles are stateful: GenerateKeypair returns the public key and keeps the
// matching secret key inside the handle for later Decapsulate or Sign calls.
// Callers must Close a handle when done with it.
package pqcrypto

import "errors"

var (
	// ErrUnknownAlgorithm is returned when opening an algorithm the provider does not offer.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrHandleClosed is returned by any operation on a closed handle.
	ErrHandleClosed = errors.New("handle is closed")

	// ErrNoKeypair is returned by operations that need a secret key before
	// GenerateKeypair has been called.
	ErrNoKeypair = errors.New("no keypair generated")
)

// KEM is a handle to one key encapsulation algorithm.
type KEM interface {
	Name() string
	GenerateKeypair() (publicKey []byte, err error)
	Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error)
	Decapsulate(ciphertext []byte) (sharedSecret []byte, err error)
	Close() error
}

// Signer is a handle to one signature algorithm.
type Signer interface {
	Name() string
	GenerateKeypair() (publicKey []byte, err error)
	Sign(message []byte) (signature []byte, err error)
	Verify(message, signature, publicKey []byte) (bool, error)
	Close() error
}

// Provider enumerates enabled algorithms and opens handles to them.
type Provider interface {
	EnabledKEMs() []string
	EnabledSignatures() []string
	OpenKEM(name string) (KEM, error)
	OpenSignature(name string) (Signer, error)
}
