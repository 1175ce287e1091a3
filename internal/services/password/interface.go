package password

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/dicepass/dicepass/internal/services/password Service

import "context"

// Service defines the interface for password generation operations
type Service interface {
	// GeneratePassword generates a single diceware password
	GeneratePassword(ctx context.Context, input *GeneratePasswordInput) (*GeneratePasswordOutput, error)

	// GeneratePasswords generates a batch of independent passwords
	GeneratePasswords(ctx context.Context, input *GeneratePasswordsInput) (*GeneratePasswordsOutput, error)
}
