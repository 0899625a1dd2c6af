package termboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/marquee"
)

// Options configures Run.
type Options struct {
	// Interval is the frame interval. Zero means marquee.DefaultFrameInterval.
	Interval time.Duration
	// Background is the terminal color lights are blended over. Default black.
	Background marquee.Color
	// HideStatus removes the status line from the bottom row.
	HideStatus bool
}

// Driver connects one board to a tcell screen. It lays the board out
// vertically centered, translates mouse events to board pointer calls, and
// repaints on every frame the board scrolls.
//
// A Driver is not safe for concurrent use; Run funnels all events and
// frames through a marquee.Loop.
type Driver struct {
	screen  tcell.Screen
	board   *marquee.Board
	opts    Options
	surface *Surface

	inside bool
	down   bool
	lastX  int
	lastY  int
}

// NewDriver lays out board on screen and attaches a terminal surface.
func NewDriver(screen tcell.Screen, board *marquee.Board, opts Options) *Driver {
	d := &Driver{screen: screen, board: board, opts: opts}
	d.layout()
	return d
}

// Surface returns the current terminal surface.
func (d *Driver) Surface() *Surface {
	return d.surface
}

// layout fits the board to the screen width and centers it vertically,
// leaving the last row for the status line.
func (d *Driver) layout() {
	w, h := d.screen.Size()
	avail := h
	if !d.opts.HideStatus {
		avail--
	}
	pitch := d.board.Pitch()
	d.board.Resize(float64(w) * pitch)

	rows := d.board.Rows()
	top := max(0, (avail-rows)/2)
	d.surface = NewSurface(d.screen, 0, top, d.board.Columns(), min(rows, max(0, avail-top)), pitch)
	d.surface.SetBackground(d.opts.Background)

	d.screen.Clear()
	d.board.Attach(d.surface)
	d.drawStatus()
}

// Frame advances the board for one tick and shows the result.
func (d *Driver) Frame(now time.Time) {
	if d.board.Update(now) {
		d.board.Render()
	}
	d.drawStatus()
	d.screen.Show()
}

// Handle processes one tcell event. It reports false when the event asks
// the program to quit.
func (d *Driver) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		d.layout()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P':
				d.cyclePaint()
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		d.pointer(x, y, ev.Buttons()&tcell.Button1 != 0)
	}
	return true
}

// cyclePaint steps the paint value through accent, bright and empty.
func (d *Driver) cyclePaint() {
	paint := d.board.Overlay().Paint()
	next := marquee.CellAccent
	switch paint.Get() {
	case marquee.CellAccent:
		next = marquee.CellBright
	case marquee.CellBright:
		next = marquee.CellEmpty
	}
	paint.Set(next)
}

// pointer runs the enter/leave and down/move/up transitions for a mouse
// sample in terminal cells.
func (d *Driver) pointer(x, y int, pressed bool) {
	ov := d.board.Overlay()
	ox, oy := d.surface.Origin()
	cols, rows := d.board.Columns(), d.board.Rows()
	inside := x >= ox && x < ox+cols && y >= oy && y < oy+rows

	if inside != d.inside {
		if inside {
			ov.PointerEnter()
		} else {
			ov.PointerLeave()
		}
		d.inside = inside
	}

	pitch := d.board.Pitch()
	lx, ly := float64(x-ox)*pitch, float64(y-oy)*pitch
	switch {
	case pressed && !d.down:
		d.down = true
		if inside {
			ov.PointerDown(lx, ly)
		}
	case pressed && d.down:
		if inside && (x != d.lastX || y != d.lastY) {
			ov.PointerMove(lx, ly)
		}
	case !pressed && d.down:
		d.down = false
		if inside {
			ov.PointerUp()
		}
	}
	d.lastX, d.lastY = x, y
}

// drawStatus writes the one-line status at the bottom of the screen.
func (d *Driver) drawStatus() {
	if d.opts.HideStatus {
		return
	}
	w, h := d.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	state := "scrolling"
	if d.board.Paused() {
		state = "paused"
	}
	line := fmt.Sprintf(" %s · %s · paint %s · p: paint · q: quit",
		strings.TrimSpace(d.board.Text()), state, d.board.Overlay().Paint().Get())
	line = runewidth.Truncate(line, w, "…")
	line = runewidth.FillRight(line, w)

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		d.screen.SetContent(x, h-1, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
}

// Run drives board on screen until ctx is cancelled or the user quits.
// The screen must already be initialised; Run enables mouse reporting and
// leaves finalising the screen to the caller.
func Run(ctx context.Context, screen tcell.Screen, board *marquee.Board, opts Options) error {
	if screen == nil || board == nil {
		return errors.New("termboard: nil screen or board")
	}
	screen.EnableMouse()
	defer screen.DisableMouse()

	d := NewDriver(screen, board, opts)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := marquee.StartLoop(ctx, opts.Interval, d.Frame)
	defer loop.Stop()

	// PollEvent returns nil once the caller finalises the screen, which
	// ends the reader.
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-loop.Done():
			return nil
		case ev := <-events:
			loop.Post(func() {
				if !d.Handle(ev) {
					cancel()
				}
			})
		}
	}
}
