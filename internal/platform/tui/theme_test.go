package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, err := ThemeByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, theme.Name)
	}

	theme, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, "classic", theme.Name)

	_, err = ThemeByName("neon")
	assert.ErrorContains(t, err, "unknown theme")
}

func TestThemesCoverEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, err := ThemeByName(name)
		require.NoError(t, err)
		for c := core.ColorDefault; c <= core.ColorBannerLose; c++ {
			_, ok := theme.Palette[c]
			assert.True(t, ok, "theme %s has no style for color %d", name, c)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 12")
	s.DrawTextColor(0, 1, "2048", core.ColorTile2048)
	s.DrawTextColor(5, 1, "x", core.Color(200))

	out := RenderScreen(s, ClassicTheme().Palette)

	assert.Contains(t, out, "Score: 12")
	assert.Contains(t, out, "2048")
	assert.Contains(t, out, "x")
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}
