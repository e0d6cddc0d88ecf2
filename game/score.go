package game

import (
	"fmt"

	"github.com/lixenwraith/frogger/terminal"
)

// Score tracks wins and deaths. No rule increments either yet
type Score struct {
	Wins   int
	Deaths int
}

// Init zeroes every counter
func (s *Score) Init() {
	s.Wins = 0
	s.Deaths = 0
}

// Update is the per-frame hook for scoring rules
func (s *Score) Update() {}

// Render prints the score view: wins, deaths and the frame counter
func (s *Score) Render(c terminal.Console, frame int) {
	c.Println(fmt.Sprintf(" Wins   : %d", s.Wins))
	c.Println(fmt.Sprintf(" Deaths : %d", s.Deaths))
	c.Println(fmt.Sprintf(" Frame   : %d", frame))
}
