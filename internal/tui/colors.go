package tui

// Color constants for the storypoints TUI theme
const (
	// Base colors
	ColorCardBackground = "#101826" // Dark slate
	ColorBorder         = "#2E3A52" // Grey-blue

	// Text colors
	ColorPrimaryText   = "#E8EDF5" // Labels, titles, user input
	ColorSecondaryText = "#9AA7BD" // Secondary text
	ColorDisabledText  = "#5E6A80" // Muted text
	ColorHelpText      = "240"     // Dark grey help line

	// Accent colors
	ColorAccentMain   = "#2DD4BF" // Teal accents, active borders
	ColorAccentBright = "#99F6E4" // Highlights, selected card

	// State colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Votes recorded, completed items
	ColorWarning = "#F59E0B" // Timer running low
)
