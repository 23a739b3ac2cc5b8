package domain

// Theme is the UI color scheme persisted alongside the task collection.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Opposite returns the other theme. Unknown values flip to dark so a
// corrupted stored value still toggles somewhere sensible.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
