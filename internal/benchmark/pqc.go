package benchmark

import (
	"fmt"
	"log/slog"
	"time"

	"pqbench/internal/pqcrypto"
)

// KEMTimings holds the averages for one KEM algorithm, in seconds.
type KEMTimings struct {
	Keygen float64
	Encaps float64
	Decaps float64
}

// SignatureTimings holds the averages for one signature algorithm, in seconds.
type SignatureTimings struct {
	Keygen float64
	Sign   float64
	Verify float64
}

// PQCRunner times post-quantum operations in-process through a Provider.
type PQCRunner struct {
	Provider            pqcrypto.Provider
	Iterations          int
	Message             []byte
	KEMPreference       []string
	SignaturePreference []string
	Observer            Observer
	Clock               Clock
}

func NewPQCRunner(p pqcrypto.Provider, iterations int, obs Observer) *PQCRunner {
	return &PQCRunner{
		Provider:            p,
		Iterations:          iterations,
		Message:             []byte("test message for signing"),
		KEMPreference:       DefaultKEMPreference,
		SignaturePreference: DefaultSignaturePreference,
		Observer:            obs,
		Clock:               time.Now,
	}
}

// Choose picks one KEM and one signature algorithm.
func (r *PQCRunner) Choose() (kem, sig Selection, err error) {
	kem, err = SelectAlgorithm("kem", r.Provider.EnabledKEMs(), r.KEMPreference)
	if err != nil {
		return Selection{}, Selection{}, err
	}
	sig, err = SelectAlgorithm("signature", r.Provider.EnabledSignatures(), r.SignaturePreference)
	if err != nil {
		return Selection{}, Selection{}, err
	}

	for _, s := range []struct {
		category string
		sel      Selection
	}{{"kem", kem}, {"signature", sig}} {
		if s.sel.Preferred {
			slog.Info("Using preferred algorithm", "category", s.category, "algorithm", s.sel.Algorithm)
		} else {
			slog.Info("No preferred algorithm enabled; using first enabled", "category", s.category, "algorithm", s.sel.Algorithm)
		}
	}
	return kem, sig, nil
}

// Run selects the algorithms, times both and returns six records: keygen,
// encaps and decaps for the KEM followed by keygen, sign and verify for the
// signature algorithm.
func (r *PQCRunner) Run() ([]Record, error) {
	kem, sig, err := r.Choose()
	if err != nil {
		return nil, err
	}

	kt, err := r.TimeKEM(kem.Algorithm)
	if err != nil {
		return nil, err
	}
	st, err := r.TimeSignature(sig.Algorithm)
	if err != nil {
		return nil, err
	}

	return []Record{
		{Family: FamilyPQC, Algorithm: kem.Algorithm, Operation: OpKeygen, AvgTimeS: kt.Keygen},
		{Family: FamilyPQC, Algorithm: kem.Algorithm, Operation: OpEncaps, AvgTimeS: kt.Encaps},
		{Family: FamilyPQC, Algorithm: kem.Algorithm, Operation: OpDecaps, AvgTimeS: kt.Decaps},
		{Family: FamilyPQC, Algorithm: sig.Algorithm, Operation: OpKeygen, AvgTimeS: st.Keygen},
		{Family: FamilyPQC, Algorithm: sig.Algorithm, Operation: OpSign, AvgTimeS: st.Sign},
		{Family: FamilyPQC, Algorithm: sig.Algorithm, Operation: OpVerify, AvgTimeS: st.Verify},
	}, nil
}

// TimeKEM measures keygen on its own, then encapsulation and decapsulation
// against a fresh keypair per iteration. Keypair generation inside the second
// loop is not part of the encaps/decaps samples.
func (r *PQCRunner) TimeKEM(name string) (*KEMTimings, error) {
	slog.Info("Benchmarking KEM", "algorithm", name, "iterations", r.Iterations)

	k, err := r.Provider.OpenKEM(name)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	keygen, err := r.sample(name, OpKeygen, func() error {
		_, err := k.GenerateKeypair()
		return err
	})
	if err != nil {
		return nil, err
	}

	now := r.now()
	var encaps, decaps []time.Duration
	for i := 0; i < r.Iterations; i++ {
		pk, err := k.GenerateKeypair()
		if err != nil {
			return nil, err
		}

		var ct []byte
		te, err := timeIt(now, func() error {
			var err error
			ct, _, err = k.Encapsulate(pk)
			return err
		})
		if err != nil {
			return nil, err
		}
		td, err := timeIt(now, func() error {
			_, err := k.Decapsulate(ct)
			return err
		})
		if err != nil {
			return nil, err
		}

		r.observe(name, OpEncaps, te)
		r.observe(name, OpDecaps, td)
		encaps = append(encaps, te)
		decaps = append(decaps, td)
	}

	t := &KEMTimings{}
	if t.Keygen, err = Mean(keygen); err != nil {
		return nil, err
	}
	if t.Encaps, err = Mean(encaps); err != nil {
		return nil, err
	}
	if t.Decaps, err = Mean(decaps); err != nil {
		return nil, err
	}
	return t, nil
}

// TimeSignature measures keygen on its own, then signing and verification
// with one fixed keypair and message. Each verify sample checks a signature
// produced just before it, outside the timed section. The verification
// result itself is not inspected.
func (r *PQCRunner) TimeSignature(name string) (*SignatureTimings, error) {
	slog.Info("Benchmarking signature", "algorithm", name, "iterations", r.Iterations)

	s, err := r.Provider.OpenSignature(name)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	keygen, err := r.sample(name, OpKeygen, func() error {
		_, err := s.GenerateKeypair()
		return err
	})
	if err != nil {
		return nil, err
	}

	pk, err := s.GenerateKeypair()
	if err != nil {
		return nil, err
	}
	msg := r.Message

	signs, err := r.sample(name, OpSign, func() error {
		_, err := s.Sign(msg)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := r.now()
	var verifies []time.Duration
	for i := 0; i < r.Iterations; i++ {
		sig, err := s.Sign(msg)
		if err != nil {
			return nil, err
		}
		tv, err := timeIt(now, func() error {
			_, err := s.Verify(msg, sig, pk)
			return err
		})
		if err != nil {
			return nil, err
		}
		r.observe(name, OpVerify, tv)
		verifies = append(verifies, tv)
	}

	t := &SignatureTimings{}
	if t.Keygen, err = Mean(keygen); err != nil {
		return nil, err
	}
	if t.Sign, err = Mean(signs); err != nil {
		return nil, err
	}
	if t.Verify, err = Mean(verifies); err != nil {
		return nil, err
	}
	return t, nil
}

// sample times fn once per iteration.
func (r *PQCRunner) sample(name string, op Operation, fn func() error) ([]time.Duration, error) {
	now := r.now()
	samples := make([]time.Duration, 0, r.Iterations)
	for i := 0; i < r.Iterations; i++ {
		elapsed, err := timeIt(now, fn)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", name, op, err)
		}
		r.observe(name, op, elapsed)
		samples = append(samples, elapsed)
	}
	return samples, nil
}

func (r *PQCRunner) observe(name string, op Operation, elapsed time.Duration) {
	if r.Observer != nil {
		r.Observer.ObserveTrial(string(FamilyPQC), name, string(op), elapsed)
	}
}

func (r *PQCRunner) now() Clock {
	if r.Clock == nil {
		return time.Now
	}
	return r.Clock
}
