package benchmark

import "fmt"

var (
	// DefaultKEMPreference lists KEM names from most to least preferred.
	DefaultKEMPreference = []string{"Kyber768", "ML-KEM-768", "Kyber512", "ML-KEM-512"}

	// DefaultSignaturePreference lists signature names from most to least preferred.
	DefaultSignaturePreference = []string{"ML-DSA-87", "ML-DSA-65", "ML-DSA-44", "Dilithium3", "Dilithium2"}
)

// Selection is the result of applying a preference list to an enabled set.
type Selection struct {
	Algorithm string
	// Preferred is false when no preferred name was enabled and the first
	// enabled algorithm was used instead.
	Preferred bool
}

// SelectAlgorithm returns the first preferred name present in enabled. If
// none is present it falls back to enabled[0], keeping the order the library
// reported. An empty enabled set yields ErrEmptyCatalog.
func SelectAlgorithm(category string, enabled, preferred []string) (Selection, error) {
	if len(enabled) == 0 {
		return Selection{}, fmt.Errorf("%s: %w", category, ErrEmptyCatalog)
	}

	set := make(map[string]struct{}, len(enabled))
	for _, name := range enabled {
		set[name] = struct{}{}
	}
	for _, cand := range preferred {
		if _, ok := set[cand]; ok {
			return Selection{Algorithm: cand, Preferred: true}, nil
		}
	}
	return Selection{Algorithm: enabled[0]}, nil
}
