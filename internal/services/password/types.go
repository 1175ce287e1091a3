package password

import "github.com/dicepass/dicepass/internal/models"

// GeneratePasswordInput holds parameters for generating one password
type GeneratePasswordInput struct {
	// WordCount is the number of words in the password
	WordCount int
}

// GeneratePasswordOutput holds the generated password
type GeneratePasswordOutput struct {
	Password *models.Password
}

// GeneratePasswordsInput holds parameters for generating a batch of passwords
type GeneratePasswordsInput struct {
	// Count is the number of passwords to generate
	Count int

	// WordCount is the number of words in each password
	WordCount int
}

// GeneratePasswordsOutput holds the generated passwords
type GeneratePasswordsOutput struct {
	Passwords []*models.Password
}
