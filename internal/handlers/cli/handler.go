package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dicepass/dicepass/internal/services/password"
)

// Config holds configuration for the CLI handler
type Config struct {
	// PasswordService generates the passwords to display
	PasswordService password.Service

	// Out is where rendered passwords are written
	Out io.Writer

	// ShowRolls includes each password's dice rolls in the output
	ShowRolls bool
}

// Handler renders generated passwords to a terminal or file
type Handler struct {
	service   password.Service
	out       io.Writer
	showRolls bool
}

// New creates a new CLI handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PasswordService == nil {
		return nil, errors.New("password service cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output writer cannot be nil")
	}

	return &Handler{
		service:   cfg.PasswordService,
		out:       cfg.Out,
		showRolls: cfg.ShowRolls,
	}, nil
}

// RunInput holds parameters for one generation run
type RunInput struct {
	// Passwords is the number of passwords to generate
	Passwords int

	// Words is the number of words in each password
	Words int
}

// Run generates the requested passwords and renders them one per line
func (h *Handler) Run(ctx context.Context, input *RunInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	output, err := h.service.GeneratePasswords(ctx, &password.GeneratePasswordsInput{
		Count:     input.Passwords,
		WordCount: input.Words,
	})
	if err != nil {
		return err
	}

	for _, generated := range output.Passwords {
		if err := h.renderPassword(generated); err != nil {
			return err
		}
	}

	return nil
}
