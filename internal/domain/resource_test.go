package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	t.Run("short title untouched", func(t *testing.T) {
		assert.Equal(t, "short", TruncateTitle("short"))
	})

	t.Run("exact limit untouched", func(t *testing.T) {
		title := strings.Repeat("a", MaxTitleLen)
		assert.Equal(t, title, TruncateTitle(title))
	})

	t.Run("long title cut with ellipsis", func(t *testing.T) {
		got := TruncateTitle(strings.Repeat("a", 600))
		assert.Len(t, got, MaxTitleLen)
		assert.Equal(t, strings.Repeat("a", 497)+"...", got)
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		got := TruncateTitle(strings.Repeat("ż", 600))
		assert.Equal(t, strings.Repeat("ż", 497)+"...", got)
	})
}

func TestTruncateDescription(t *testing.T) {
	got := TruncateDescription(strings.Repeat("b", 5000))
	assert.Len(t, got, MaxDescriptionLen)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestStatusValid(t *testing.T) {
	for _, status := range []Status{
		StatusNew, StatusProcessing, StatusAiAnalysing, StatusInbox,
		StatusVault, StatusArchived, StatusTrash, StatusError,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, Status("").Valid())
	assert.False(t, Status("deleted").Valid())
}
