package game

import (
	"errors"
	"testing"
)

func TestNewSpawnsTwoTiles(t *testing.T) {
	g := New(42)

	if got := g.Board().EmptyCount(); got != 14 {
		t.Errorf("new game empty count = %d, want 14", got)
	}
	if g.Score() != 0 {
		t.Errorf("new game score = %d, want 0", g.Score())
	}
	if g.Turns() != 0 {
		t.Errorf("new game turns = %d, want 0", g.Turns())
	}
	if g.Status() != StatusPlaying {
		t.Errorf("new game status = %v, want %v", g.Status(), StatusPlaying)
	}

	for y := range BoardSize {
		for x := range BoardSize {
			v := g.Board()[y][x]
			if v != 0 && v != 1 && v != 2 {
				t.Errorf("spawned tile at (%d,%d) has exponent %d, want 1 or 2", x, y, v)
			}
		}
	}
}

func TestNewIsSeedDeterministic(t *testing.T) {
	a := New(12345)
	b := New(12345)

	if a.Board() != b.Board() {
		t.Errorf("same seed produced different openings:\n%v\n%v", a.Board(), b.Board())
	}

	c := New(54321)
	if a.Board() == c.Board() {
		t.Error("different seeds produced the same opening, suspicious")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	script := []Key{
		KeyLeft, KeyLeft, KeyUp, KeyRight, KeyDown,
		KeyDown, KeyLeft, KeyUp, KeyUp, KeyRight,
		KeyLeft, KeyDown, KeyRight, KeyUp, KeyLeft,
	}

	a := New(7)
	b := New(7)

	for i, key := range script {
		movedA := a.Apply(key)
		movedB := b.Apply(key)

		if movedA != movedB {
			t.Fatalf("step %d: games diverged on move acceptance", i)
		}
		if a.Snapshot() != b.Snapshot() {
			t.Fatalf("step %d: games diverged:\n%+v\n%+v", i, a.Snapshot(), b.Snapshot())
		}
	}
}

func TestApplyAcceptedMove(t *testing.T) {
	g := New(1)
	g.board = Board{{1, 1, 2, 0}}
	g.score = 0
	g.turns = 0

	if !g.Apply(KeyLeft) {
		t.Fatal("Apply(KeyLeft) = false, want accepted")
	}

	if g.Score() != 4 {
		t.Errorf("score after merge = %d, want 4", g.Score())
	}
	if g.Turns() != 1 {
		t.Errorf("turns = %d, want 1", g.Turns())
	}
	if g.board[0][0] != 2 || g.board[0][1] != 2 {
		t.Errorf("row 0 = %v, want leading [2 2]", g.board[0])
	}

	// The move left 14 empty cells and the spawn claimed one.
	if got := g.Board().EmptyCount(); got != 13 {
		t.Errorf("empty count after spawn = %d, want 13", got)
	}

	// The pair of 2s merges regardless of where the tile spawned.
	if !g.Apply(KeyLeft) {
		t.Fatal("second Apply(KeyLeft) = false, want accepted")
	}
	if g.Score() != 12 {
		t.Errorf("score after second merge = %d, want 12", g.Score())
	}
	if g.Turns() != 2 {
		t.Errorf("turns = %d, want 2", g.Turns())
	}
}

func TestApplyRejectsNoopMove(t *testing.T) {
	g := New(1)
	g.board = Board{{5, 0, 0, 0}}
	g.score = 0
	g.turns = 0

	if g.Apply(KeyLeft) {
		t.Fatal("Apply(KeyLeft) = true on a board that cannot move left")
	}

	if g.Turns() != 0 {
		t.Errorf("rejected move advanced turns to %d", g.Turns())
	}
	if g.Score() != 0 {
		t.Errorf("rejected move changed score to %d", g.Score())
	}
	if got := g.Board().EmptyCount(); got != 15 {
		t.Errorf("rejected move spawned a tile, empty count = %d, want 15", got)
	}
	if g.Status() != StatusPlaying {
		t.Errorf("rejected move changed status to %v", g.Status())
	}
}

func TestApplyQuit(t *testing.T) {
	g := New(8)

	if g.Apply(KeyQuit) {
		t.Error("Apply(KeyQuit) = true, quitting is not a move")
	}
	if g.Status() != StatusQuit {
		t.Errorf("status = %v, want %v", g.Status(), StatusQuit)
	}

	before := g.Board()
	if g.Apply(KeyLeft) {
		t.Error("Apply after quit = true, want ignored")
	}
	if g.Board() != before {
		t.Error("Apply after quit changed the board")
	}
}

func TestApplyUnknownKey(t *testing.T) {
	g := New(8)
	before := g.Snapshot()

	if g.Apply(Key('x')) {
		t.Error("Apply('x') = true, want ignored")
	}
	if g.Snapshot() != before {
		t.Error("unknown key changed game state")
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  Key
		dir  Direction
		move bool
	}{
		{KeyUp, DirUp, true},
		{KeyLeft, DirLeft, true},
		{KeyDown, DirDown, true},
		{KeyRight, DirRight, true},
		{KeyQuit, 0, false},
		{Key('x'), 0, false},
		{Key('\n'), 0, false},
	}

	for _, tt := range tests {
		dir, ok := tt.key.Direction()
		if ok != tt.move {
			t.Errorf("Key(%q).Direction() ok = %v, want %v", tt.key, ok, tt.move)
			continue
		}
		if ok && dir != tt.dir {
			t.Errorf("Key(%q).Direction() = %v, want %v", tt.key, dir, tt.dir)
		}
	}
}

func TestCheckLost(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			"full board without merges",
			Board{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 1},
			},
			true,
		},
		{
			"full board with a horizontal merge",
			Board{
				{1, 1, 2, 1},
				{2, 3, 1, 2},
				{1, 2, 3, 1},
				{2, 1, 2, 3},
			},
			false,
		},
		{
			"full board with a vertical merge",
			Board{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 3},
				{2, 1, 2, 3},
			},
			false,
		},
		{
			"board with an empty cell",
			Board{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 2, 1, 2},
				{2, 1, 2, 0},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(1)
			g.board = tt.board

			if got := g.CheckLost(); got != tt.want {
				t.Errorf("CheckLost() = %v, want %v", got, tt.want)
			}

			wantStatus := StatusPlaying
			if tt.want {
				wantStatus = StatusLost
			}
			if g.Status() != wantStatus {
				t.Errorf("status after CheckLost = %v, want %v", g.Status(), wantStatus)
			}

			if g.board != tt.board {
				t.Error("CheckLost mutated the board")
			}
		})
	}
}

func TestCheckLostAfterQuit(t *testing.T) {
	g := New(1)
	g.Apply(KeyQuit)

	if g.CheckLost() {
		t.Error("CheckLost() = true on a quit game")
	}
	if g.Status() != StatusQuit {
		t.Errorf("CheckLost overwrote status, got %v", g.Status())
	}
}

func TestPlaceTileFullBoard(t *testing.T) {
	g := New(1)
	g.board = Board{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	}

	if err := g.placeTile(); !errors.Is(err, ErrBoardFull) {
		t.Errorf("placeTile on full board = %v, want ErrBoardFull", err)
	}
}

func TestGameMaxTile(t *testing.T) {
	g := New(1)
	g.board = Board{{11, 1, 0, 0}}

	if got := g.MaxTile(); got != 2048 {
		t.Errorf("MaxTile() = %d, want 2048", got)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPlaying, "playing"},
		{StatusLost, "lost"},
		{StatusQuit, "quit"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := New(42)
	snap := g.Snapshot()

	if snap.Turns != 0 || snap.Score != 0 {
		t.Errorf("fresh snapshot = %+v, want zero turns and score", snap)
	}
	if snap.Board != g.Board() {
		t.Error("snapshot board differs from game board")
	}
	if snap.Status != StatusPlaying {
		t.Errorf("snapshot status = %v, want %v", snap.Status, StatusPlaying)
	}
	if snap.MaxTile != 2 && snap.MaxTile != 4 {
		t.Errorf("snapshot max tile = %d, want 2 or 4", snap.MaxTile)
	}
	if snap.Seed != 42 {
		t.Errorf("snapshot seed = %d, want 42", snap.Seed)
	}
}
