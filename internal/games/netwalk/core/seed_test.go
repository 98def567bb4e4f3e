package core

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testSeed derives a distinct seed from an integer.
func testSeed(i int) Seed {
	var s Seed
	binary.LittleEndian.PutUint64(s[:], uint64(i))
	binary.LittleEndian.PutUint64(s[24:], uint64(i)*0x9e3779b97f4a7c15)
	return s
}

func TestSeedRoundTrip(t *testing.T) {
	for i := range 20 {
		seed := testSeed(i)
		text := seed.String()
		require.Len(t, text, 64)
		assert.Equal(t, strings.ToLower(text), text)

		parsed, err := ParseSeed(text)
		require.NoError(t, err)
		assert.Equal(t, seed, parsed)
	}
}

func TestNewSeedIsRandom(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	parsed, err := ParseSeed(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

func TestParseSeedInvalid(t *testing.T) {
	valid := strings.Repeat("ab", 32)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", valid[:62]},
		{"long", valid + "00"},
		{"odd length", valid[:63]},
		{"not hex", strings.Repeat("zz", 32)},
		{"uppercase", strings.ToUpper(valid)},
		{"whitespace", " " + valid[1:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSeed(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSeed), "error %v should wrap ErrInvalidSeed", err)
		})
	}
}

func TestSeedYAML(t *testing.T) {
	type doc struct {
		Seed Seed `yaml:"seed"`
	}

	in := doc{Seed: testSeed(7)}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), in.Seed.String())

	var back doc
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, in.Seed, back.Seed)

	err = yaml.Unmarshal([]byte("seed: nothex\n"), &back)
	assert.Error(t, err)
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(testSeed(3))
	b := NewRNG(testSeed(3))
	c := NewRNG(testSeed(4))

	same := true
	for range 64 {
		va, vb, vc := a.IntN(1<<30), b.IntN(1<<30), c.IntN(1<<30)
		assert.Equal(t, va, vb)
		if va != vc {
			same = false
		}
	}
	assert.False(t, same, "different seeds should produce different streams")
	assert.Equal(t, testSeed(3), a.Seed())
}

func TestRNGIntNBounds(t *testing.T) {
	r := NewRNG(Seed{})
	assert.Equal(t, 0, r.IntN(0))
	assert.Equal(t, 0, r.IntN(-5))
	for range 1000 {
		v := r.IntN(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}
