package wordlist

// WordListError is a custom error type for word-list errors
type WordListError string

// Error implements the error interface
func (e WordListError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotLoaded          WordListError = "no word list has been loaded"
	ErrIncompleteCoverage WordListError = "incomplete word list coverage"
)
