package models

import helpers "registry.link/models/helpers"

// Theme identifiers selectable on a registry. ThemeCustom marks a palette
// supplied by the owner instead of the catalog.
const (
	ThemeClassic   = "classic"
	ThemeBotanical = "botanical"
	ThemeModern    = "modern"
	ThemeNoir      = "noir"
	ThemeCustom    = "custom"
)

// ThemePalette is the complete set of color roles a page render needs.
// Every rendering path must resolve to a fully populated palette.
type ThemePalette struct {
	Accent          string
	AccentLight     string
	AccentDark      string
	Text            string
	TextLight       string
	TextMuted       string
	Border          string
	BorderLight     string
	Background      string
	Surface         string
	SurfaceElevated string
}

// themeOrder keeps the catalog ordered; the first entry is the fallback for
// unknown identifiers.
var themeOrder = []string{ThemeClassic, ThemeBotanical, ThemeModern, ThemeNoir}

var themeCatalog = map[string]ThemePalette{
	ThemeClassic: {
		Accent: "#b08d57", AccentLight: "#d3b787", AccentDark: "#8a6b3f",
		Text: "#2d2a26", TextLight: "#5c564e", TextMuted: "#8f887d",
		Border: "#d9d2c7", BorderLight: "#eae5dc",
		Background: "#faf7f2", Surface: "#ffffff", SurfaceElevated: "#fffdf9",
	},
	ThemeBotanical: {
		Accent: "#4a7c59", AccentLight: "#7fa88b", AccentDark: "#34593f",
		Text: "#22302a", TextLight: "#4c5a53", TextMuted: "#7d8a83",
		Border: "#cfdcd3", BorderLight: "#e4ece7",
		Background: "#f4f8f5", Surface: "#ffffff", SurfaceElevated: "#fbfdfb",
	},
	ThemeModern: {
		Accent: "#3b6ea5", AccentLight: "#6e97c4", AccentDark: "#2a4f77",
		Text: "#1f2428", TextLight: "#49525a", TextMuted: "#7b858e",
		Border: "#d5dadf", BorderLight: "#e9edf0",
		Background: "#f6f8fa", Surface: "#ffffff", SurfaceElevated: "#fcfdfe",
	},
	ThemeNoir: {
		Accent: "#c0a062", AccentLight: "#d8be8d", AccentDark: "#9a7d45",
		Text: "#ece8e1", TextLight: "#c9c3b8", TextMuted: "#948e83",
		Border: "#3a3732", BorderLight: "#2b2925",
		Background: "#161513", Surface: "#201e1b", SurfaceElevated: "#282522",
	},
}

// customRoles maps the jsonb palette keys onto palette fields.
func (p *ThemePalette) apply(roles helpers.JSONBMap) {
	set := func(dst *string, key string) {
		if v, ok := roles[key]; ok && v != "" {
			*dst = v
		}
	}
	set(&p.Accent, "accent")
	set(&p.AccentLight, "accent_light")
	set(&p.AccentDark, "accent_dark")
	set(&p.Text, "text")
	set(&p.TextLight, "text_light")
	set(&p.TextMuted, "text_muted")
	set(&p.Border, "border")
	set(&p.BorderLight, "border_light")
	set(&p.Background, "background")
	set(&p.Surface, "surface")
	set(&p.SurfaceElevated, "surface_elevated")
}

// PaletteFor resolves a theme identifier to a complete palette. Unknown
// identifiers fall back to the catalog's first entry. For ThemeCustom the
// supplied roles override the fallback palette role by role, so missing
// custom roles still resolve.
func PaletteFor(theme string, custom helpers.JSONBMap) ThemePalette {
	base := themeCatalog[themeOrder[0]]
	if theme == ThemeCustom {
		base.apply(custom)
		return base
	}
	if p, ok := themeCatalog[theme]; ok {
		return p
	}
	return base
}

// ThemeNames returns the selectable catalog identifiers in display order.
func ThemeNames() []string {
	names := make([]string, len(themeOrder))
	copy(names, themeOrder)
	return names
}
