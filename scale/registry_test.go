package scale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_DomainsAgree verifies the internal-consistency contract
// behind ErrRegistry: every legal tonic of each mode class has a signature
// number, and vice versa, so a validated tonic can never miss the registry.
func TestRegistry_DomainsAgree(t *testing.T) {
	require.Len(t, majorTonics, 15)
	require.Len(t, minorTonics, 15)
	require.Len(t, signatureNumbers, 30)

	for tonic := range majorTonics {
		_, ok := signatureNumbers[tonic+" MAJOR"]
		assert.True(t, ok, "major tonic %s must have a signature number", tonic)
	}
	for tonic := range minorTonics {
		_, ok := signatureNumbers[tonic+" MINOR"]
		assert.True(t, ok, "minor tonic %s must have a signature number", tonic)
	}

	for qualified := range signatureNumbers {
		tonic, mode, ok := strings.Cut(qualified, " ")
		require.True(t, ok, "qualified tonic %q must carry a mode", qualified)
		if mode == "MAJOR" {
			assert.True(t, majorTonics[tonic], "signature entry %s must be a legal major tonic", qualified)
		} else {
			assert.True(t, minorTonics[tonic], "signature entry %s must be a legal minor tonic", qualified)
		}
	}
}

// TestExpandSignature checks the expansion table edge cases: zero, full
// sharps, full flats, and allocation freshness.
func TestExpandSignature(t *testing.T) {
	assert.Empty(t, expandSignature(0))
	assert.Equal(t, []string{"F#"}, expandSignature(1))
	assert.Equal(t, []string{"Bb", "Eb"}, expandSignature(-2))
	assert.Len(t, expandSignature(7), 7)
	assert.Len(t, expandSignature(-7), 7)

	a, b := expandSignature(3), expandSignature(3)
	a[0] = "X"
	assert.Equal(t, []string{"F#", "C#", "G#"}, b, "expansions must not share backing arrays")
}

// TestSignatureNumbers_SpotChecks pins a few registry values against the
// reference data.
func TestSignatureNumbers_SpotChecks(t *testing.T) {
	assert.Equal(t, 0, signatureNumbers["C MAJOR"])
	assert.Equal(t, 7, signatureNumbers["C# MAJOR"])
	assert.Equal(t, -7, signatureNumbers["Cb MAJOR"])
	assert.Equal(t, 5, signatureNumbers["G# MINOR"])
	assert.Equal(t, -5, signatureNumbers["Bb MINOR"])
	assert.Equal(t, 3, signatureNumbers["A MAJOR"])
	assert.Equal(t, -1, signatureNumbers["D MINOR"])
}
