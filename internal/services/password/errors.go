package password

// PasswordError is a custom error type for password service errors
type PasswordError string

// Error implements the error interface
func (e PasswordError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   PasswordError = "config cannot be nil"
	ErrNilWordList PasswordError = "word list cannot be nil"
	ErrNilInput    PasswordError = "input cannot be nil"
)
