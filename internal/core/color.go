package core

// Color is the semantic colour of a screen cell.
// The platform layer decides how each one is actually drawn.
type Color uint8

// Semantic colours used by the game renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorBird
	ColorObstacle
	ColorGround
	ColorText
	ColorAlert
	ColorHighlight
)

// String returns a short name for the colour, used in debug dumps.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorBird:
		return "bird"
	case ColorObstacle:
		return "obstacle"
	case ColorGround:
		return "ground"
	case ColorText:
		return "text"
	case ColorAlert:
		return "alert"
	case ColorHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}
