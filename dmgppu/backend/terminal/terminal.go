// Package terminal renders the framebuffer into an ANSI-capable terminal
// using tcell, packing two pixels per cell with half-block glyphs.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/geoffreyporto/dmgppu/dmgppu/backend"
	"github.com/geoffreyporto/dmgppu/dmgppu/backend/terminal/render"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

const (
	width  = video.FramebufferWidth
	height = video.FramebufferHeight

	// Two pixels per cell vertically via half-block glyphs.
	gameAreaWidth  = width
	gameAreaHeight = height / 2

	statusRow = gameAreaHeight
	logRows   = 3

	minTermWidth  = gameAreaWidth
	minTermHeight = gameAreaHeight + 1 + logRows
)

// Backend implements backend.Backend on top of a tcell screen.
type Backend struct {
	screen    tcell.Screen
	config    backend.BackendConfig
	logBuffer *render.LogBuffer
	prevLog   *slog.Logger
	events    chan tcell.Event
	quit      chan struct{}
}

func New() *Backend {
	return &Backend{}
}

func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}

	w, h := screen.Size()
	if w < minTermWidth || h < minTermHeight {
		screen.Fini()
		return fmt.Errorf("terminal too small: need at least %dx%d, have %dx%d",
			minTermWidth, minTermHeight, w, h)
	}

	t.screen = screen
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()

	// Redirect slog into the on-screen log tail for as long as tcell owns
	// the terminal.
	t.logBuffer = render.NewLogBuffer(64)
	t.prevLog = slog.Default()
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelInfo)))

	t.events = make(chan tcell.Event, 16)
	t.quit = make(chan struct{})
	go func() {
		for {
			select {
			case <-t.quit:
				return
			default:
			}
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case t.events <- ev:
			case <-t.quit:
				return
			}
		}
	}()

	slog.Info("Terminal backend started", "title", config.Title)
	return nil
}

func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.Action, error) {
	actions := t.pollActions()

	t.drawFrame(frame)
	t.drawStatus()
	t.drawLogTail()
	t.screen.Show()

	return actions, nil
}

func (t *Backend) Cleanup() error {
	if t.screen == nil {
		return nil
	}
	close(t.quit)
	t.screen.Fini()
	t.screen = nil
	if t.prevLog != nil {
		slog.SetDefault(t.prevLog)
	}
	slog.Info("Terminal backend stopped")
	return nil
}

func (t *Backend) pollActions() []backend.Action {
	var actions []backend.Action
	for {
		select {
		case ev := <-t.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					actions = append(actions, backend.ActionQuit)
				case ev.Key() == tcell.KeyF12:
					actions = append(actions, backend.ActionSnapshot)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					actions = append(actions, backend.ActionQuit)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
					actions = append(actions, backend.ActionSnapshot)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
					actions = append(actions, backend.ActionCyclePattern)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return actions
		}
	}
}

// drawFrame paints the whole frame, one cell per two vertically stacked
// pixels.
func (t *Backend) drawFrame(frame *video.FrameBuffer) {
	rows := frame.ToDisplayRows()
	for cellY := 0; cellY < gameAreaHeight; cellY++ {
		top := rows[cellY*2]
		bottom := rows[cellY*2+1]
		for x := 0; x < gameAreaWidth; x++ {
			ch, style := render.HalfBlockCell(top[x], bottom[x])
			t.screen.SetContent(x, cellY, ch, nil, style)
		}
	}
}

func (t *Backend) drawStatus() {
	status := "q quit | s snapshot"
	if t.config.TestPattern {
		status += " | p next pattern"
	}
	if t.config.State != nil {
		status = t.config.State.StatusLine() + "  " + status
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	t.putLine(statusRow, status, style)
}

func (t *Backend) drawLogTail() {
	entries := t.logBuffer.GetRecent(logRows)
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 0; i < logRows; i++ {
		line := ""
		if i < len(entries) {
			line = render.FormatLogEntry(entries[i])
		}
		t.putLine(statusRow+1+i, line, style)
	}
}

func (t *Backend) putLine(row int, text string, style tcell.Style) {
	w, _ := t.screen.Size()
	col := 0
	for _, ch := range text {
		if col >= w {
			break
		}
		t.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	for ; col < w; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}
}
