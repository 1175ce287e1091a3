package wordlist

//go:generate mockgen -package=mocks -destination=mocks/mock_wordlist.go github.com/dicepass/dicepass/internal/wordlist List

import (
	"io"

	"github.com/dicepass/dicepass/internal/models"
)

// List defines the interface for a diceware word list
type List interface {
	// Load parses a word-list definition from r
	Load(r io.Reader) error

	// Verify checks that every possible roll-key maps to a word
	Verify() error

	// Generate produces a password of wordCount words
	Generate(wordCount int) (*models.Password, error)

	// DiceCount returns the number of dice rolled per word
	DiceCount() int

	// DiceSides returns the number of sides on each die
	DiceSides() int
}
