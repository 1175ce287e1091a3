package password

import (
	"context"

	"github.com/dicepass/dicepass/internal/common/clock"
	"github.com/dicepass/dicepass/internal/common/uuid"
	"github.com/dicepass/dicepass/internal/models"
	"github.com/dicepass/dicepass/internal/wordlist"
)

// Config holds dependencies for the password service
type Config struct {
	// WordList is the loaded word list passwords are generated from
	WordList wordlist.List

	// Clock provides timestamps for generated passwords. Defaults to
	// the system clock.
	Clock clock.Clock

	// UUIDGenerator provides password IDs. Defaults to random UUIDs.
	UUIDGenerator uuid.UUID
}

// service implements the Service interface
type service struct {
	wordList wordlist.List
	clock    clock.Clock
	uuid     uuid.UUID
}

// New creates a new password service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.WordList == nil {
		return nil, ErrNilWordList
	}

	serviceClock := cfg.Clock
	if serviceClock == nil {
		serviceClock = clock.New()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	return &service{
		wordList: cfg.WordList,
		clock:    serviceClock,
		uuid:     uuidGenerator,
	}, nil
}

// GeneratePassword generates a single diceware password
func (s *service) GeneratePassword(ctx context.Context, input *GeneratePasswordInput) (*GeneratePasswordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	password, err := s.wordList.Generate(input.WordCount)
	if err != nil {
		return nil, err
	}

	password.ID = s.uuid.NewUUID()
	password.GeneratedAt = s.clock.Now()

	return &GeneratePasswordOutput{
		Password: password,
	}, nil
}

// GeneratePasswords generates a batch of independent passwords
func (s *service) GeneratePasswords(ctx context.Context, input *GeneratePasswordsInput) (*GeneratePasswordsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	passwords := []*models.Password{}
	for i := 0; i < input.Count; i++ {
		output, err := s.GeneratePassword(ctx, &GeneratePasswordInput{
			WordCount: input.WordCount,
		})
		if err != nil {
			return nil, err
		}

		passwords = append(passwords, output.Password)
	}

	return &GeneratePasswordsOutput{
		Passwords: passwords,
	}, nil
}
