package unfold

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. Negative indices mean no color.
type Theme struct {
	Text   int // Body text
	Title  int // Block titles
	Hint   int // Expand hint label
	Focus  int // Focus gutter
	Error  int // Error messages
	Muted  int // Status bar, placeholders
	CodeBg int // Inline code background
	Accent int // Notifications
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Text:   -1,
		Title:  4,
		Hint:   6,
		Focus:  5,
		Error:  1,
		Muted:  8,
		CodeBg: 0,
		Accent: 2,
	}
}
