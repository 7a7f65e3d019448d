// Package game holds the three scoring game engines. Each engine owns
// its round state and judging rules; screens drive them with player input
// and report the final score back to the session when Complete turns
// true.
package game

// Engine is the contract shared by the memory, pronunciation and quiz
// engines, letting the session flow stay mode-agnostic.
type Engine interface {
	// Complete reports whether the engine has consumed its item sequence.
	Complete() bool

	// Score returns the engine's score so far; once Complete, the final
	// score reported to the session.
	Score() int
}
