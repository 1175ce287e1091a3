package wordlist

import list "github.com/dicepass/dicepass/internal/wordlist"

// GetWordListInput holds parameters for loading a word list
type GetWordListInput struct {
	// Path is the location of the word-list file
	Path string
}

// GetWordListOutput holds the loaded word list
type GetWordListOutput struct {
	WordList *list.WordList
}
