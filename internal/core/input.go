package core

// InputFrame is the directional input snapshot for a single simulation tick.
// The platform samples key state once per tick and passes the frame to the
// physics step, so input handling and simulation share no hidden state.
// When both directions are held, left wins.
type InputFrame struct {
	Left  bool
	Right bool
}

// Idle reports whether no direction is held this frame.
func (f InputFrame) Idle() bool {
	return !f.Left && !f.Right
}
