package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	list "github.com/dicepass/dicepass/internal/wordlist"
)

// Config holds configuration for the file word-list repository
type Config struct {
	// DiceCount overrides the default number of dice per word
	DiceCount int

	// DiceSides overrides the default number of sides per die
	DiceSides int

	// Entropy is the random byte source handed to loaded lists.
	// Defaults to crypto/rand.Reader.
	Entropy io.Reader
}

// fileRepository implements the Repository interface using the local filesystem
type fileRepository struct {
	config *Config
}

// NewFile creates a new file-backed word-list repository
func NewFile(cfg *Config) (*fileRepository, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	return &fileRepository{
		config: cfg,
	}, nil
}

// GetWordList opens and parses the word-list file at input.Path. The
// returned list is loaded but not verified; verification is a separate
// step for the caller.
func (r *fileRepository) GetWordList(ctx context.Context, input *GetWordListInput) (*GetWordListOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.New("input and path cannot be empty")
	}

	f, err := os.Open(input.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	wordList := list.New(&list.Config{
		DiceCount: r.config.DiceCount,
		DiceSides: r.config.DiceSides,
		Entropy:   r.config.Entropy,
	})

	if err := wordList.Load(f); err != nil {
		return nil, fmt.Errorf("failed to load word list %q: %w", input.Path, err)
	}

	return &GetWordListOutput{
		WordList: wordList,
	}, nil
}
