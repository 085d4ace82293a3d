package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt rendering to the screen and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Frame    int  // Frames simulated since Reset
	GameOver bool // Whether the game has ended
	Quit     bool // Whether a quit signal was received
}

// StepResult is returned by Game.Step() after each simulated frame.
type StepResult struct {
	State GameState
}
