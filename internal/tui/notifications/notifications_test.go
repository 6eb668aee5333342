package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/staffdesk/internal/tui/state"
)

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, Info, SeverityOf(state.LevelInfo))
	assert.Equal(t, Warning, SeverityOf(state.LevelWarning))
	assert.Equal(t, Error, SeverityOf(state.LevelError))
}

func TestRenderInlineFromState(t *testing.T) {
	out := RenderInlineFromState(state.Notification{Level: state.LevelError, Message: "remove failed"})
	assert.Contains(t, out, "✕")
	assert.Contains(t, out, "remove failed")
}
