package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helpers "registry.link/models/helpers"
)

func paletteComplete(t *testing.T, p ThemePalette) {
	t.Helper()
	for _, role := range []string{
		p.Accent, p.AccentLight, p.AccentDark,
		p.Text, p.TextLight, p.TextMuted,
		p.Border, p.BorderLight,
		p.Background, p.Surface, p.SurfaceElevated,
	} {
		assert.NotEmpty(t, role)
	}
}

func TestPaletteFor(t *testing.T) {
	t.Run("every catalog theme resolves to a complete palette", func(t *testing.T) {
		for _, name := range ThemeNames() {
			paletteComplete(t, PaletteFor(name, nil))
		}
	})

	t.Run("unknown identifiers fall back to the first catalog entry", func(t *testing.T) {
		assert.Equal(t, PaletteFor(ThemeClassic, nil), PaletteFor("does-not-exist", nil))
		assert.Equal(t, PaletteFor(ThemeClassic, nil), PaletteFor("", nil))
	})

	t.Run("custom palettes override role by role", func(t *testing.T) {
		p := PaletteFor(ThemeCustom, helpers.JSONBMap{"accent": "#123456", "background": "#ffffff"})
		assert.Equal(t, "#123456", p.Accent)
		assert.Equal(t, "#ffffff", p.Background)
		// Roles the owner did not supply still resolve.
		paletteComplete(t, p)
	})

	t.Run("custom with no roles still resolves completely", func(t *testing.T) {
		paletteComplete(t, PaletteFor(ThemeCustom, nil))
	})
}
