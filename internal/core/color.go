package core

// Color is the foreground color of a screen cell. The terminal host maps
// each value to an ANSI 256-color code.
type Color uint8

// Colors used by the panels and the scene.
const (
	ColorDefault      Color = iota
	ColorRed                // End screen frame
	ColorYellow             // Level timer
	ColorBlue               // Level frame
	ColorBrightRed          // Game over label
	ColorBrightGreen        // Score
	ColorBrightYellow       // Title and player
	ColorBrightBlue         // Level name
	ColorBrightCyan         // Lives
	ColorBrightWhite        // Messages and hints
	ColorGray               // Credits and footer
)
