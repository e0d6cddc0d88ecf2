package constants

// Player spawn and animation
const (
	// SpawnX is the default spawn column
	SpawnX = 20

	// SpawnY is the default spawn row
	SpawnY = 20

	// AnimationPeriodFrames is the number of frames between glyph toggles (~0.5s at 60 FPS)
	AnimationPeriodFrames = 30
)

// Player glyphs
const (
	GlyphPlayerIdle = 'O' // animation phase 0
	GlyphPlayerAlt  = '0' // animation phase 1
	GlyphEmptyCell  = ' '
)
