package render

import (
	"sort"

	"github.com/charmbracelet/glamour/styles"
)

// Glamour style names
const (
	ThemeDark  = styles.DarkStyle
	ThemeLight = styles.LightStyle
	ThemeNoTTY = styles.NoTTYStyle
)

// IsBuiltinStyle reports whether style names one of glamour's standard styles
// rather than a path to a JSON style file.
func IsBuiltinStyle(style string) bool {
	_, ok := styles.DefaultStyles[style]
	return ok
}

// ThemeNames returns glamour's standard style names, sorted
func ThemeNames() []string {
	names := make([]string, 0, len(styles.DefaultStyles))
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
