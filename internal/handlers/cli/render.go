package cli

import (
	"fmt"
	"strings"

	"github.com/dicepass/dicepass/internal/models"
)

// renderPassword writes one password as a single line: the space-joined
// dice rolls (when enabled), a tab, then the space-joined words.
func (h *Handler) renderPassword(generated *models.Password) error {
	var fields []string

	if h.showRolls {
		fields = append(fields, strings.Join(generated.Rolls, " "))
	}
	fields = append(fields, strings.Join(generated.Words, " "))

	_, err := fmt.Fprintln(h.out, strings.Join(fields, "\t"))
	return err
}
