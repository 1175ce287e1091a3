package models

import (
	"time"
)

// Password represents one generated diceware password
type Password struct {
	// ID is the unique identifier for the password
	ID string

	// Rolls contains the roll-key used for each word, in generation order
	Rolls []string

	// Words contains the words, index-aligned with Rolls
	Words []string

	// GeneratedAt is when the password was generated
	GeneratedAt time.Time
}
