package dice

// DiceError is a custom error type for dice-related errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    DiceError = "config cannot be nil"
	ErrInvalidSides DiceError = "sides must be between 2 and 20"
)
