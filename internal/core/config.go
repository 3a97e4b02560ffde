package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Playfield width in cells
	ScreenH  int // Playfield height in cells
	TickRate int // Display frames per second
}
