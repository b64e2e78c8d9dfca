package game

// Game is the pluggable interface for different table engines (sjavs first).
type Game interface {
	Type() string
}
