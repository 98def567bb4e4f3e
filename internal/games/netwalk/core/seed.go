package core

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"
)

// SeedSize is the seed length in bytes.
const SeedSize = 32

var (
	// ErrInvalidSeed is returned when a seed string is not 64 lowercase hex characters.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidSize is returned for board dimensions outside [1, MaxDimension].
	ErrInvalidSize = errors.New("invalid board size")
)

// Seed is the 32-byte key of a game's random stream.
type Seed [SeedSize]byte

// NewSeed returns a seed read from the operating system's secure source.
func NewSeed() (Seed, error) {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		return Seed{}, fmt.Errorf("core: read random seed: %w", err)
	}
	return s, nil
}

// ParseSeed decodes the textual form produced by Seed.String.
func ParseSeed(s string) (Seed, error) {
	if len(s) != hex.EncodedLen(SeedSize) {
		return Seed{}, fmt.Errorf("core: seed must be %d hex characters, got %d: %w",
			hex.EncodedLen(SeedSize), len(s), ErrInvalidSeed)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return Seed{}, fmt.Errorf("core: seed has non lowercase-hex character %q at %d: %w", c, i, ErrInvalidSeed)
		}
	}

	var seed Seed
	if _, err := hex.Decode(seed[:], []byte(s)); err != nil {
		return Seed{}, fmt.Errorf("core: %v: %w", err, ErrInvalidSeed)
	}
	return seed, nil
}

// String returns the seed as 64 lowercase hex characters.
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(text []byte) error {
	parsed, err := ParseSeed(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// RNG is the deterministic random stream of one game.
// It is a ChaCha8 generator keyed by the seed, so a seed yields the same
// draws on every run and platform.
type RNG struct {
	seed Seed
	r    *mrand.Rand
}

// NewRNG creates a stream positioned at the start of the seed's sequence.
func NewRNG(seed Seed) *RNG {
	return &RNG{
		seed: seed,
		r:    mrand.New(mrand.NewChaCha8(seed)),
	}
}

// Seed returns the seed the stream was created from.
func (r *RNG) Seed() Seed {
	return r.seed
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
