// Command te is a terminal front end for the editing session.
//
//	te [-config te.toml] [file]
//
// One terminal cell is CellWidth by LineHeight pixels of the session.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ge-editor/gecore/define"

	"github.com/ge-editor/theme"

	"github.com/ge-editor/utils"

	te "github.com/ge-editor/tecore"
	"github.com/ge-editor/tecore/buffer"
	"github.com/ge-editor/tecore/config"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	e := te.NewEditor(cfg)
	if path := flag.Arg(0); path != "" {
		if err := e.OpenFile(path); err != nil && !buffer.IsStatus(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	s.SetStyle(theme.ColorDefault)
	s.EnableMouse()

	quit := func() {
		maybePanic := recover()
		s.Fini()
		if maybePanic != nil {
			panic(maybePanic)
		}
	}
	defer quit()

	v := &view{screen: s, editor: e, cfg: cfg}
	v.loop()
}

const doubleClickInterval = 400 * time.Millisecond

type view struct {
	screen  tcell.Screen
	editor  *te.Editor
	cfg     config.Config
	pressed bool

	lastClick    time.Time
	lastX, lastY int
}

func (v *view) loop() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := v.screen.Size()
			v.editor.Resize(w*v.cfg.CellWidth, (h-1)*v.cfg.LineHeight)
			v.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return
			}
			v.key(ev)
		case *tcell.EventMouse:
			v.mouse(ev)
		}
	}
}

func (v *view) key(ev *tcell.EventKey) {
	e := v.editor

	if e.IsSearchMode() {
		switch ev.Key() {
		case tcell.KeyEscape:
			e.ExitSearch()
			return
		case tcell.KeyCtrlG:
			e.AcceptSearch()
			return
		case tcell.KeyCtrlN, tcell.KeyDown:
			e.FindNext()
			return
		case tcell.KeyCtrlP, tcell.KeyUp:
			e.FindPrevious()
			return
		}
	}

	switch ev.Key() {
	case tcell.KeyRune:
		e.TypeRune(ev.Rune())
	case tcell.KeyTab:
		e.TypeRune('\t')
	case tcell.KeyEnter:
		e.TypeRune('\r')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.TypeRune('\b')
	case tcell.KeyEscape:
		e.ClearSelection()
	case tcell.KeyLeft:
		e.MoveCursorBackward()
	case tcell.KeyRight:
		e.MoveCursorForward()
	case tcell.KeyUp:
		e.MoveCursorPrevLine()
	case tcell.KeyDown:
		e.MoveCursorNextLine()
	case tcell.KeyHome:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			e.MoveCursorBeginningOfFile()
		} else {
			e.MoveCursorBeginningOfLine()
		}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			e.MoveCursorEndOfFile()
		} else {
			e.MoveCursorEndOfLine()
		}
	case tcell.KeyCtrlJ:
		e.Autoindent()
	case tcell.KeyPgUp:
		e.MoveViewPageBackward()
	case tcell.KeyPgDn:
		e.MoveViewPageForward()
	case tcell.KeyCtrlS:
		e.SaveFile()
	case tcell.KeyCtrlZ:
		e.Undo()
	case tcell.KeyCtrlY:
		e.Redo()
	case tcell.KeyCtrlA:
		e.SelectAll()
	case tcell.KeyCtrlC:
		e.Copy()
	case tcell.KeyCtrlX:
		e.Cut()
	case tcell.KeyCtrlV:
		e.Paste()
	case tcell.KeyCtrlF:
		e.EnterSearch()
	case tcell.KeyCtrlN:
		e.FindNext()
	case tcell.KeyCtrlP:
		e.FindPrevious()
	case tcell.KeyCtrlO:
		e.CharInfo()
	}
}

func (v *view) mouse(ev *tcell.EventMouse) {
	e := v.editor
	x, y := ev.Position()
	px, py := x*v.cfg.CellWidth, y*v.cfg.LineHeight

	switch btn := ev.Buttons(); {
	case btn&tcell.WheelUp != 0:
		e.ScrollLines(-1)
	case btn&tcell.WheelDown != 0:
		e.ScrollLines(1)
	case btn&tcell.WheelLeft != 0:
		e.ScrollPixels(-v.cfg.WheelLines * v.cfg.CellWidth)
	case btn&tcell.WheelRight != 0:
		e.ScrollPixels(v.cfg.WheelLines * v.cfg.CellWidth)
	case btn&tcell.Button1 != 0:
		switch {
		case v.pressed:
			e.PointerDrag(px, py)
		case ev.When().Sub(v.lastClick) < doubleClickInterval && x == v.lastX && y == v.lastY:
			e.PointerDoubleClick(px, py)
			v.lastClick = time.Time{}
		default:
			e.PointerDown(px, py, ev.Modifiers()&tcell.ModShift != 0)
			v.lastClick, v.lastX, v.lastY = ev.When(), x, y
		}
		v.pressed = true
	case v.pressed:
		e.PointerUp()
		v.pressed = false
	}
}

func (v *view) draw() {
	s, e := v.screen, v.editor
	s.Clear()
	w, h := s.Size()
	scroll := e.ScrollOffset()

	for _, line := range e.VisibleLines() {
		y := line.Y / v.cfg.LineHeight
		col := 0
		for _, ch := range line.Text {
			x0 := (e.PixelAtColumn(line.RowIndex, col) - scroll.X) / v.cfg.CellWidth
			x1 := (e.PixelAtColumn(line.RowIndex, col+1) - scroll.X) / v.cfg.CellWidth
			col++
			if x1 <= 0 || x0 >= w {
				continue
			}
			switch {
			case ch == '\t':
				for x := max(0, x0); x < x1; x++ {
					s.SetContent(x, y, ' ', nil, theme.ColorDefault)
				}
			case ch == define.DEL:
				v.setCells(x0, y, theme.ColorControlCode, '^', '?')
			case ch < 32:
				v.setCells(x0, y, theme.ColorControlCode, '^', ch+64)
			default:
				s.SetContent(x0, y, ch, nil, theme.ColorDefault)
			}
		}
	}

	for _, r := range e.SelectionRects() {
		v.restyle(r, theme.ColorDefault.Reverse(true))
	}
	for _, m := range e.MatchRects() {
		style := theme.ColorSearchFound
		if m.Current {
			style = theme.ColorSearchFoundOnCursor
		}
		v.restyle(m.Rect, style)
	}

	v.drawModeline(w, h-1)

	cx, cy := e.CaretPixel()
	s.ShowCursor(cx/v.cfg.CellWidth, cy/v.cfg.LineHeight)
	s.Show()
}

func (v *view) setCells(x, y int, style tcell.Style, chs ...rune) {
	for i, ch := range chs {
		if x+i >= 0 {
			v.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

// restyle changes the style of the cells covered by r, a pixel rectangle.
func (v *view) restyle(r utils.Rect, style tcell.Style) {
	x0, x1 := r.X/v.cfg.CellWidth, (r.X+r.Width)/v.cfg.CellWidth
	y := r.Y / v.cfg.LineHeight
	for x := max(0, x0); x < x1; x++ {
		mainc, combc, _, _ := v.screen.GetContent(x, y)
		v.screen.SetContent(x, y, mainc, combc, style)
	}
}

func (v *view) drawModeline(width, y int) {
	e := v.editor
	text := fmt.Sprintf(" %s  %s  %s  %s", e.Title(), e.Stats(), e.GetLinefeed(), e.Message())
	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, ch, nil, theme.ColorModeLineActive)
		x += utils.RuneWidth(ch)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, theme.ColorModeLineActive)
	}
}
