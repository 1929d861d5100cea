package cli

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user for setup answers
type Prompter interface {
	// Input reads a line. validate may be nil; mask hides the typed text.
	Input(label, def string, validate func(string) error, mask bool) (string, error)

	// Select returns the index of the chosen item
	Select(label string, items []string) (int, error)

	// Confirm asks a yes/no question
	Confirm(label string) (bool, error)
}

// PromptuiPrompter implements Prompter on the terminal
type PromptuiPrompter struct{}

// NewPromptuiPrompter creates a terminal prompter
func NewPromptuiPrompter() *PromptuiPrompter {
	return &PromptuiPrompter{}
}

// Input reads a line from the terminal
func (p *PromptuiPrompter) Input(label, def string, validate func(string) error, mask bool) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Validate:  validate,
		AllowEdit: def != "" && !mask,
	}
	if mask {
		prompt.Mask = '*'
	}
	return prompt.Run()
}

// Select shows a list and returns the chosen index
func (p *PromptuiPrompter) Select(label string, items []string) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	idx, _, err := prompt.Run()
	return idx, err
}

// Confirm asks a yes/no question. Answering no is not an error.
func (p *PromptuiPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
