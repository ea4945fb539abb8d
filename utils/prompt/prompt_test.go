package promptutils

import (
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestHandlePromptError(t *testing.T) {
	p := &RealPrompter{}

	assert.NoError(t, p.HandlePromptError(nil))
	assert.ErrorIs(t, p.HandlePromptError(promptui.ErrInterrupt), ErrInterrupted)

	err := p.HandlePromptError(errors.New("tty closed"))
	assert.EqualError(t, err, "prompt failed: tty closed")
	assert.NotErrorIs(t, err, ErrInterrupted)
}

func TestValidateNotEmpty(t *testing.T) {
	assert.NoError(t, ValidateNotEmpty("value"))
	assert.Error(t, ValidateNotEmpty(""))
	assert.Error(t, ValidateNotEmpty("   "))
}

func TestNewTextPrompt(t *testing.T) {
	tests := []struct {
		name      string
		required  bool
		input     string
		expectErr bool
	}{
		{name: "required rejects empty", required: true, input: "", expectErr: true},
		{name: "required rejects blank", required: true, input: "  ", expectErr: true},
		{name: "required accepts value", required: true, input: "https://gis/arcgis/admin"},
		{name: "optional accepts empty", required: false, input: ""},
		{name: "optional accepts value", required: false, input: "https://gis/portal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := newTextPrompt("Portal URL", "default", tt.required)
			assert.Equal(t, "Portal URL", prompt.Label)
			assert.Equal(t, "default", prompt.Default)

			var err error
			if prompt.Validate != nil {
				err = prompt.Validate(tt.input)
			}
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, !tt.required, prompt.AllowEdit)
		})
	}
}

func TestNewPrompt(t *testing.T) {
	assert.Implements(t, (*Prompter)(nil), NewPrompt())
}
