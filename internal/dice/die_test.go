package dice

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		d, err := New(nil)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, ErrNilConfig)
	})

	t.Run("invalid sides", func(t *testing.T) {
		for _, sides := range []int{-3, 0, 1, 21, 100} {
			d, err := New(&Config{Sides: sides})
			assert.Nil(t, d, "sides=%d", sides)
			assert.ErrorIs(t, err, ErrInvalidSides, "sides=%d", sides)
		}
	})

	t.Run("valid sides", func(t *testing.T) {
		for sides := MinSides; sides <= MaxSides; sides++ {
			d, err := New(&Config{Sides: sides})
			require.NoError(t, err)
			assert.Equal(t, sides, d.Sides())
		}
	})
}

func TestRollStaysInRange(t *testing.T) {
	for sides := MinSides; sides <= MaxSides; sides++ {
		d, err := New(&Config{Sides: sides})
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			face, err := d.Roll()
			require.NoError(t, err)
			require.GreaterOrEqual(t, face, 1)
			require.LessOrEqual(t, face, sides)
		}
	}
}

func TestRollIsUniform(t *testing.T) {
	// 20000 rolls per die keeps every face many standard deviations
	// inside the 20% tolerance band.
	const rolls = 20000

	for sides := MinSides; sides <= MaxSides; sides++ {
		t.Run(fmt.Sprintf("sides=%d", sides), func(t *testing.T) {
			d, err := New(&Config{Sides: sides})
			require.NoError(t, err)

			counts := make(map[int]int)
			for i := 0; i < rolls; i++ {
				face, err := d.Roll()
				require.NoError(t, err)
				counts[face]++
			}

			expected := float64(rolls) / float64(sides)
			for face := 1; face <= sides; face++ {
				assert.InDelta(t, expected, counts[face], expected*0.2, "face %d", face)
			}
		})
	}
}

func TestRollRejectsBytesAboveCeiling(t *testing.T) {
	// For six sides the ceiling is 251: 255 and 252 must be thrown
	// away, then 251 maps to face 6.
	d, err := New(&Config{
		Sides:   6,
		Entropy: bytes.NewReader([]byte{255, 252, 251}),
	})
	require.NoError(t, err)

	face, err := d.Roll()
	require.NoError(t, err)
	assert.Equal(t, 6, face)
}

func TestRollLowestByte(t *testing.T) {
	d, err := New(&Config{
		Sides:   6,
		Entropy: bytes.NewReader([]byte{0}),
	})
	require.NoError(t, err)

	face, err := d.Roll()
	require.NoError(t, err)
	assert.Equal(t, 1, face)
}

func TestRollEntropyFailure(t *testing.T) {
	d, err := New(&Config{
		Sides:   6,
		Entropy: bytes.NewReader(nil),
	})
	require.NoError(t, err)

	face, err := d.Roll()
	assert.Error(t, err)
	assert.Zero(t, face)
}
