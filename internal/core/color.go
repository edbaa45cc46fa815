package core

// Color is an xterm 256-colour code for a screen cell.
type Color uint8

// ColorDefault leaves the terminal's foreground untouched.
const ColorDefault Color = 0

// ColorFromRGB maps a float colour onto the 6x6x6 xterm cube.
// Fully transparent colours map to ColorDefault.
func ColorFromRGB(r, g, b, a float32) Color {
	if a <= 0 {
		return ColorDefault
	}
	level := func(v float32) int {
		return Clamp(int(v*5+0.5), 0, 5)
	}
	return Color(16 + 36*level(r) + 6*level(g) + level(b))
}
