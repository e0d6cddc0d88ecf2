package game

// GameState is everything the loop mutates per frame. Owned by a single goroutine
type GameState struct {
	// Frame counts player updates since start; never reset
	Frame int

	Player Player
	Score  Score

	// Debug selects the timing panel instead of the score view
	Debug bool
}

// NewGameState creates state with the player at spawn and a zeroed score
func NewGameState(spawn Point) *GameState {
	gs := &GameState{
		Player: NewPlayer(spawn.X, spawn.Y),
	}
	gs.Score.Init()
	return gs
}
