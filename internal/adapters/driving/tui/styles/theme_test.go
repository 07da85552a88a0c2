package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestStyles_Priority(t *testing.T) {
	s := DefaultStyles()
	theme := s.Theme()

	assert.Equal(t, theme.Critical, s.Priority(domain.PriorityCritical).GetForeground())
	assert.Equal(t, theme.High, s.Priority(domain.PriorityHigh).GetForeground())
	assert.Equal(t, theme.Warning, s.Priority(domain.PriorityMedium).GetForeground())
	assert.Equal(t, theme.Muted, s.Priority(domain.Priority("bogus")).GetForeground())
}

func TestNewStyles_InputFieldUsesBorderColour(t *testing.T) {
	theme := DefaultTheme()
	theme.Border = "#010203"
	s := NewStyles(theme)
	assert.Equal(t, theme.Border, s.InputField.GetBorderTopForeground())
}
