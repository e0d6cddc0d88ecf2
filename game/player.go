package game

import (
	"github.com/lixenwraith/frogger/constants"
	"github.com/lixenwraith/frogger/terminal"
)

// Player is the single controllable entity
type Player struct {
	Position     Point
	PrevPosition Point // Position before the most recent Update, the cell to erase

	AnimationPhase int // 0 or 1, derived from the frame counter
	LastInput      terminal.Key
}

// NewPlayer creates a player at the given spawn cell
func NewPlayer(x, y int) Player {
	var p Player
	p.Init(x, y)
	return p
}

// Init places the player at the spawn cell with no pending input.
// PrevPosition matches Position so the first render erases nothing
func (p *Player) Init(x, y int) {
	p.Position = Point{X: x, Y: y}
	p.PrevPosition = p.Position
	p.AnimationPhase = 0
	p.LastInput = terminal.KeyNone
}

// HandleInput stores the frame's key verbatim.
// Returns true when the key ends the game; no rule does yet
func (p *Player) HandleInput(k terminal.Key) bool {
	p.LastInput = k
	return false
}

// Update advances the shared frame counter and applies the last input as a
// one-cell cardinal move. Movement is unbounded
func (p *Player) Update(frame *int) {
	*frame++

	p.PrevPosition = p.Position

	if d, ok := Displacement(p.LastInput); ok {
		p.Position = p.Position.Add(d)
	}

	p.AnimationPhase = Phase(*frame)
}

// Moved reports whether the last Update changed the position
func (p *Player) Moved() bool {
	return p.Position != p.PrevPosition
}

// Glyph returns the character for the current animation phase
func (p *Player) Glyph() rune {
	if p.AnimationPhase != 0 {
		return constants.GlyphPlayerAlt
	}
	return constants.GlyphPlayerIdle
}

// Render erases the previous cell if the player moved, then draws the current one
func (p *Player) Render(c terminal.Console) {
	if p.Moved() {
		c.RenderCharacter(constants.GlyphEmptyCell, p.PrevPosition.X, p.PrevPosition.Y)
	}
	c.RenderCharacter(p.Glyph(), p.Position.X, p.Position.Y)
}

// Displacement maps a movement key to its unit vector
func Displacement(k terminal.Key) (Point, bool) {
	switch k {
	case constants.KeyMoveUp:
		return Up, true
	case constants.KeyMoveDown:
		return Down, true
	case constants.KeyMoveLeft:
		return Left, true
	case constants.KeyMoveRight:
		return Right, true
	}
	return Point{}, false
}

// Phase returns the animation phase for a frame number, toggling every AnimationPeriodFrames
func Phase(frame int) int {
	return (frame / constants.AnimationPeriodFrames) % 2
}
