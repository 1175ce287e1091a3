package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/dicepass/dicepass/internal/dice"
	"github.com/dicepass/dicepass/internal/models"
)

const (
	// DefaultDiceCount is the number of dice rolled per word
	DefaultDiceCount = 5

	// DefaultDiceSides is the number of sides on each die
	DefaultDiceSides = 6
)

var (
	// directivePattern matches header lines like "DICE=5" or "sides: 6"
	directivePattern = regexp.MustCompile(`(?i)^(DICE|SIDES)\s*[=:]\s*(\d+)$`)

	// wordPattern matches word entry lines like "11111 abacus"
	wordPattern = regexp.MustCompile(`^(\d+)\s+(.*)$`)
)

// WordList maps dice roll-keys to words and generates passwords from
// them. It is read-only once Load has completed.
type WordList struct {
	diceCount int
	diceSides int
	entropy   io.Reader
	entries   map[string]string
	die       *dice.Die
}

// Config holds configuration for a word list
type Config struct {
	// DiceCount is the number of dice rolled per word. Defaults to 5;
	// a DICE directive in the loaded list overrides it.
	DiceCount int

	// DiceSides is the number of sides on each die. Defaults to 6; a
	// SIDES directive in the loaded list overrides it.
	DiceSides int

	// Entropy is the random byte source for the die. Defaults to
	// crypto/rand.Reader.
	Entropy io.Reader
}

// New creates a new, empty word list
func New(cfg *Config) *WordList {
	if cfg == nil {
		cfg = &Config{}
	}

	diceCount := cfg.DiceCount
	if diceCount == 0 {
		diceCount = DefaultDiceCount
	}

	diceSides := cfg.DiceSides
	if diceSides == 0 {
		diceSides = DefaultDiceSides
	}

	return &WordList{
		diceCount: diceCount,
		diceSides: diceSides,
		entropy:   cfg.Entropy,
	}
}

// Load parses a word-list definition. Word entries look like
// "11111 abacus"; DICE and SIDES directives only take effect before the
// first word-shaped line. Blank lines are skipped, and entries whose
// roll-key has the wrong length or an out-of-range digit are silently
// dropped.
func (w *WordList) Load(r io.Reader) error {
	entries := make(map[string]string)
	foundWords := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if match := wordPattern.FindStringSubmatch(line); match != nil {
			foundWords = true
			if w.isValidRoll(match[1]) {
				entries[match[1]] = match[2]
			}
			continue
		}

		if foundWords {
			continue
		}

		if match := directivePattern.FindStringSubmatch(line); match != nil {
			value, err := strconv.Atoi(match[2])
			if err != nil {
				continue
			}

			switch strings.ToUpper(match[1]) {
			case "DICE":
				w.diceCount = value
			case "SIDES":
				w.diceSides = value
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}

	die, err := dice.New(&dice.Config{
		Sides:   w.diceSides,
		Entropy: w.entropy,
	})
	if err != nil {
		return err
	}

	w.entries = entries
	w.die = die

	return nil
}

// isValidRoll reports whether roll is a usable roll-key: exactly
// diceCount digits, each in 1..diceSides.
func (w *WordList) isValidRoll(roll string) bool {
	if len(roll) != w.diceCount {
		return false
	}

	for _, c := range roll {
		digit := int(c - '0')
		if digit < 1 || digit > w.diceSides {
			return false
		}
	}

	return true
}

// Verify checks that every possible roll-key of diceCount digits over
// 1..diceSides maps to a non-empty word. Keys are visited in
// lexicographic order, most significant digit first, so the first gap
// found is reported deterministically.
func (w *WordList) Verify() error {
	if len(w.entries) == 0 {
		return ErrNotLoaded
	}

	// Odometer over the roll-key space, least significant die spinning
	// fastest.
	faces := make([]int, w.diceCount)
	for i := range faces {
		faces[i] = 1
	}

	for {
		key := rollKey(faces)
		if w.entries[key] == "" {
			return fmt.Errorf("word missing for dice roll %q: %w", key, ErrIncompleteCoverage)
		}

		i := w.diceCount - 1
		for i >= 0 && faces[i] == w.diceSides {
			faces[i] = 1
			i--
		}
		if i < 0 {
			return nil
		}
		faces[i]++
	}
}

// Generate produces a password of wordCount words. An unloaded list
// yields an empty password rather than an error, and a roll-key without
// an entry yields an empty word; callers wanting a guarantee must
// Verify first.
func (w *WordList) Generate(wordCount int) (*models.Password, error) {
	password := &models.Password{
		Rolls: []string{},
		Words: []string{},
	}

	if w.die == nil || len(w.entries) == 0 {
		return password, nil
	}

	for i := 0; i < wordCount; i++ {
		roll, err := w.rollDice()
		if err != nil {
			return nil, err
		}

		password.Rolls = append(password.Rolls, roll)
		password.Words = append(password.Words, w.entries[roll])
	}

	return password, nil
}

// rollDice rolls the die diceCount times and concatenates the faces
// into one roll-key.
func (w *WordList) rollDice() (string, error) {
	var sb strings.Builder

	for i := 0; i < w.diceCount; i++ {
		face, err := w.die.Roll()
		if err != nil {
			return "", err
		}
		sb.WriteString(strconv.Itoa(face))
	}

	return sb.String(), nil
}

// DiceCount returns the number of dice rolled per word
func (w *WordList) DiceCount() int {
	return w.diceCount
}

// DiceSides returns the number of sides on each die
func (w *WordList) DiceSides() int {
	return w.diceSides
}

// rollKey renders a sequence of faces as a roll-key string
func rollKey(faces []int) string {
	var sb strings.Builder
	for _, face := range faces {
		sb.WriteString(strconv.Itoa(face))
	}
	return sb.String()
}
