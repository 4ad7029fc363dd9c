package core

// RuntimeConfig contains configuration passed to the driver at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Update calls per second (default 60)
	Seed     int64 // RNG seed for reproducible word sequences
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

// GameState is the summary a driver needs between frames.
type GameState struct {
	Score    int  // Words per minute so far (final WPM once over)
	Words    int  // Words typed this round
	Started  bool // Whether the round has been started
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the round is paused
}
