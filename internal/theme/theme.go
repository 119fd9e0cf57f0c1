package theme

import (
	"strings"

	catppuccin "github.com/catppuccin/go"
)

const DefaultVariant = "modern_arcade"

// Palette holds hex colours for the three glyph classes plus the chrome
// used around the board.
type Palette struct {
	Even    string
	Odd     string
	Neutral string
	Accent  string
	Muted   string
	Panel   string
}

func Variants() []string {
	return []string{"modern_arcade", "cozy_clean", "retro_terminal", "classic", "catppuccin"}
}

func Normalize(variant string) string {
	v := strings.ToLower(strings.TrimSpace(variant))
	for _, known := range Variants() {
		if v == known {
			return v
		}
	}
	return DefaultVariant
}

func Valid(variant string) bool {
	v := strings.ToLower(strings.TrimSpace(variant))
	if v == "" {
		return true
	}
	for _, known := range Variants() {
		if v == known {
			return true
		}
	}
	return false
}

func ForVariant(variant string) Palette {
	switch Normalize(variant) {
	case "cozy_clean":
		return Palette{
			Even:    "#D17A86",
			Odd:     "#86B6F6",
			Neutral: "#F4F6FA",
			Accent:  "#F2B872",
			Muted:   "#A3ACC2",
			Panel:   "#1E2430",
		}
	case "retro_terminal":
		return Palette{
			Even:    "#E5D47A",
			Odd:     "#9CF5A2",
			Neutral: "#C5F7C4",
			Accent:  "#9CF5A2",
			Muted:   "#73A17A",
			Panel:   "#07150A",
		}
	case "catppuccin":
		f := catppuccin.Mocha
		return Palette{
			Even:    f.Red().Hex,
			Odd:     f.Blue().Hex,
			Neutral: f.Text().Hex,
			Accent:  f.Peach().Hex,
			Muted:   f.Overlay1().Hex,
			Panel:   f.Base().Hex,
		}
	case "classic":
		// white pole, red even disks, blue odd disks
		return Palette{
			Even:    "#FF0000",
			Odd:     "#0000FF",
			Neutral: "#FFFFFF",
			Accent:  "#FFFFFF",
			Muted:   "#C0C0C0",
			Panel:   "#000000",
		}
	default:
		return Palette{
			Even:    "#FF6F91",
			Odd:     "#5EEBFF",
			Neutral: "#EAF2FF",
			Accent:  "#FFC857",
			Muted:   "#9CAAC6",
			Panel:   "#0E1420",
		}
	}
}
