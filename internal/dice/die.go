package dice

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// MinSides is the smallest supported die
	MinSides = 2

	// MaxSides is the largest supported die
	MaxSides = 20
)

// Die simulates a single die with a fixed number of sides. Rolls draw
// single bytes from a cryptographically secure source and reject values
// above the ceiling, so every face is equally likely.
type Die struct {
	sides   int
	ceiling int
	entropy io.Reader
}

// Config for a die
type Config struct {
	// Sides is the number of faces on the die, 2 to 20
	Sides int

	// Entropy is the random byte source. Defaults to crypto/rand.Reader.
	Entropy io.Reader
}

// New creates a new die
func New(cfg *Config) (*Die, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sides < MinSides || cfg.Sides > MaxSides {
		return nil, ErrInvalidSides
	}

	entropy := cfg.Entropy
	if entropy == nil {
		entropy = rand.Reader
	}

	// A byte has 256 values and 256 is not generally divisible by
	// Sides, so taking byte % Sides directly would bias the low faces.
	// Cap accepted draws at the largest multiple of Sides that fits.
	divisor := 256 / cfg.Sides

	return &Die{
		sides:   cfg.Sides,
		ceiling: divisor*cfg.Sides - 1,
		entropy: entropy,
	}, nil
}

// Sides returns the number of faces on the die
func (d *Die) Sides() int {
	return d.sides
}

// Roll returns a uniformly random face in 1..Sides. Bytes above the
// rejection ceiling are discarded and a fresh byte is drawn.
func (d *Die) Roll() (int, error) {
	buf := make([]byte, 1)

	for {
		if _, err := io.ReadFull(d.entropy, buf); err != nil {
			return 0, fmt.Errorf("failed to read entropy: %w", err)
		}

		if int(buf[0]) > d.ceiling {
			continue
		}

		return int(buf[0])%d.sides + 1, nil
	}
}
