package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/replay"
	"github.com/vovakirdan/t2048/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Store      *storage.Store   // nil disables persistence
	Seed       int64            // 0 picks a time-based seed
	ScreenW    int
	ScreenH    int
	Recorder   *replay.Recorder // non-nil records applied moves
	Player     *replay.Player   // non-nil replays a log instead of reading move keys
	Delay      time.Duration    // pause between replayed moves
	Monochrome bool
}

// Model is the Bubble Tea model for a t2048 session, live or replayed.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	opts        Options
	keyMapper   *KeyMapper
	quitting    bool
	resultSaved bool
	recordErr   error // first recorder failure, reported after the session
}

// NewModel creates a new Bubble Tea model for one game session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Delay <= 0 {
		opts.Delay = 250 * time.Millisecond
	}

	return Model{
		game:      game.New(opts.Seed),
		screen:    core.NewScreen(opts.ScreenW, opts.ScreenH),
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the replay ticker when a log is being played back.
// Live play is purely input-driven and needs no command.
func (m Model) Init() tea.Cmd {
	if m.opts.Player != nil {
		return playbackCmd(m.opts.Delay)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board survives a resize; only the canvas changes.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case PlaybackMsg:
		return m.handlePlayback()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A replayed session only listens for quit.
	if m.opts.Player != nil {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Restart on game over. A recorded log describes exactly one
	// game, so restart is not offered while recording.
	if m.keyMapper.IsRestart(msg) && m.game.Status() != game.StatusPlaying && m.opts.Recorder == nil {
		m.game = game.New(time.Now().UnixNano())
		m.resultSaved = false
		return m, nil
	}

	key, ok := m.keyMapper.MapKey(msg)
	if !ok {
		return m, nil
	}

	if key == game.KeyQuit {
		// Quitting is never recorded.
		m.game.Apply(game.KeyQuit)
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Status() != game.StatusPlaying {
		return m, nil
	}

	if m.game.Apply(key) {
		if m.opts.Recorder != nil {
			if err := m.opts.Recorder.Record(key, m.game.Score()); err != nil && m.recordErr == nil {
				m.recordErr = err
			}
		}
		if m.game.CheckLost() {
			m.saveResult()
		}
	}

	return m, nil
}

// handlePlayback applies the next recorded move.
func (m Model) handlePlayback() (tea.Model, tea.Cmd) {
	if m.game.Status() != game.StatusPlaying || m.game.CheckLost() {
		// Terminal state reached; keep the final board on screen
		// until the user quits.
		return m, nil
	}

	key, _ := m.opts.Player.Next()
	if key == game.KeyQuit {
		m.game.Apply(game.KeyQuit)
		return m, nil
	}

	if m.game.Apply(key) {
		m.game.CheckLost()
	}

	return m, playbackCmd(m.opts.Delay)
}

// saveResult persists the finished game once.
func (m *Model) saveResult() {
	if m.opts.Store == nil || m.resultSaved {
		return
	}

	snap := m.game.Snapshot()
	if snap.Status == game.StatusPlaying || snap.Score == 0 {
		return
	}

	//nolint:errcheck // Best-effort save, the exit summary still prints
	m.opts.Store.SaveResult(storage.Result{
		Score:   snap.Score,
		Turns:   snap.Turns,
		MaxTile: snap.MaxTile,
		Seed:    snap.Seed,
		Outcome: snap.Status.String(),
	})
	m.resultSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	// Session indicator on the bottom line. A session never records
	// and replays at once.
	switch {
	case m.opts.Recorder != nil:
		m.screen.DrawTextColored(0, m.screen.Height()-1, "REC", core.ColorRed)
	case m.opts.Player != nil && m.game.Status() == game.StatusPlaying:
		m.screen.DrawTextColored(0, m.screen.Height()-1, "PLAY", core.ColorGreen)
	case m.opts.Player != nil:
		m.screen.DrawTextCentered(m.screen.Height()-1, "replay ended - press q to exit")
	}

	if m.opts.Monochrome {
		return m.screen.String()
	}
	return RenderScreen(m.screen)
}

// Snapshot returns the state of the session's game.
func (m Model) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}

// Run starts the Bubble Tea program and blocks until the session ends.
// It returns the final game snapshot for the exit summary.
func Run(opts Options) (game.Snapshot, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return model.Snapshot(), nil
	}
	if m.recordErr != nil {
		return m.Snapshot(), m.recordErr
	}
	return m.Snapshot(), nil
}
