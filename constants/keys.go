package constants

// Key codes recognized by the game loop. Anything else is stored as the last
// input but has no effect.
const (
	KeyMoveUp      = 'w'
	KeyMoveDown    = 's'
	KeyMoveLeft    = 'a'
	KeyMoveRight   = 'd'
	KeyToggleDebug = '1'
)
