package game

// Snapshot captures the observable game state for determinism checks
// and exit reports.
type Snapshot struct {
	Turns   int
	Score   int
	Board   Board
	MaxTile int
	Status  Status
	Seed    int64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Turns:   g.turns,
		Score:   g.score,
		Board:   g.board,
		MaxTile: g.board.MaxTile(),
		Status:  g.status,
		Seed:    g.seed,
	}
}
