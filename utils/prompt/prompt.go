package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

type Prompter interface {
	PromptForSelection(label string, items []string) (string, error)
	PromptForConfirmation(prompt string) bool
	PromptWithDefault(label, defaultValue string) (string, error)
	PromptRequired(label string) (string, error)
	PromptOptional(label, defaultValue string) (string, error)
	PromptForPassword(label string) (string, error)
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

func (p *RealPrompter) HandlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			fmt.Println("\nReceived termination signal. Exiting.")
			return ErrInterrupted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptForSelection(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	_, selected, err := prompt.Run()
	if err := p.HandlePromptError(err); err != nil {
		return "", err
	}
	return selected, nil
}

func (p *RealPrompter) PromptForConfirmation(prompt string) bool {
	promptInstance := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	result, err := promptInstance.Run()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(result), "y")
}

// newTextPrompt builds a free-text prompt. Optional prompts accept empty
// input and let the user clear the default.
func newTextPrompt(label, defaultValue string, required bool) promptui.Prompt {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	if required {
		prompt.Validate = ValidateNotEmpty
	} else {
		prompt.AllowEdit = true
	}
	return prompt
}

func (p *RealPrompter) runText(prompt promptui.Prompt) (string, error) {
	result, err := prompt.Run()
	if err := p.HandlePromptError(err); err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

func (p *RealPrompter) PromptWithDefault(label, defaultValue string) (string, error) {
	return p.runText(newTextPrompt(label, defaultValue, true))
}

func (p *RealPrompter) PromptRequired(label string) (string, error) {
	return p.runText(newTextPrompt(label, "", true))
}

func (p *RealPrompter) PromptOptional(label, defaultValue string) (string, error) {
	return p.runText(newTextPrompt(label, defaultValue, false))
}

func (p *RealPrompter) PromptForPassword(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Mask:     '*',
		Validate: ValidateNotEmpty,
	}
	result, err := prompt.Run()
	if err := p.HandlePromptError(err); err != nil {
		return "", err
	}
	return result, nil
}

func ValidateNotEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}
	return nil
}

func NewPrompt() Prompter {
	return &RealPrompter{}
}
