package wordlist

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dicepass/dicepass/internal/repositories/wordlist Repository

import "context"

// Repository defines the interface for word-list retrieval
type Repository interface {
	// GetWordList loads a word list from the backing store
	GetWordList(ctx context.Context, input *GetWordListInput) (*GetWordListOutput, error)
}
