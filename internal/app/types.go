package app

// Result is what the player sees after the terminal is restored.
type Result struct {
	Solved  bool
	Perfect bool
	Moves   uint64
	Resets  int
	Message string
}
