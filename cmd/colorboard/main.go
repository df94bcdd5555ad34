// Command colorboard is a live preview: type a sentence and watch the
// derived color, hex code and name update with every keystroke.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/dcazrael/color-sentence/core"
	"github.com/dcazrael/color-sentence/engine"
	"github.com/dcazrael/color-sentence/speech"
)

var toneFlag = flag.Bool("tone", true, "Play a confirmation tone on Enter")

type board struct {
	screen   tcell.Screen
	eng      *engine.Engine
	cfg      engine.Config
	narrator speech.Narrator

	input  []rune
	result core.Result
	err    error
}

func newBoard(cfg engine.Config, narrator speech.Narrator) (*board, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	b := &board{
		screen:   screen,
		eng:      engine.New(nil, nil),
		cfg:      cfg,
		narrator: narrator,
	}
	b.recompute()
	return b, nil
}

// recompute derives the color for the current input. Naming stays on the
// local heuristic so live typing never waits on the network.
func (b *board) recompute() {
	res, err := b.eng.Compute(context.Background(), string(b.input), b.cfg)
	if err != nil {
		b.err = err
		return
	}
	b.result = res
	b.err = nil
}

func (b *board) speak() {
	if b.narrator == nil || b.err != nil {
		return
	}
	b.narrator.Enqueue(speech.Utterance(string(b.input), b.result, b.cfg.Utterance))
}

func (b *board) draw() {
	s := b.screen
	s.Clear()
	w, h := s.Size()

	drawText(s, 1, 1, tcell.StyleDefault, "> "+string(b.input))

	if b.err != nil {
		drawText(s, 1, 3, tcell.StyleDefault.Foreground(tcell.ColorRed), b.err.Error())
		s.Show()
		return
	}

	c := b.result.Color
	sw := min(w-2, 48)
	top, rows := 3, 7
	if top+rows >= h {
		rows = max(h-top-1, 1)
	}

	bg := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for y := 0; y < rows; y++ {
		for x := 0; x < sw; x++ {
			s.SetContent(1+x, top+y, ' ', nil, bg)
		}
	}

	// Label color flips with the swatch brightness to stay readable
	label := fmt.Sprintf("%s  %s", c.Hex(), b.result.Name)
	fg := tcell.ColorWhite
	if c.Luminance() >= 140 {
		fg = tcell.ColorBlack
	}
	lx := 1 + max((sw-len(label))/2, 0)
	drawText(s, lx, top+rows/2, bg.Foreground(fg), label)

	drawText(s, 1, top+rows+1, tcell.StyleDefault.Dim(true), "Enter to speak, Ctrl+U to clear, Esc to quit")
	s.Show()
}

func (b *board) run() {
	for {
		b.draw()
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyEnter:
				b.speak()
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(b.input) > 0 {
					b.input = b.input[:len(b.input)-1]
					b.recompute()
				}
			case tcell.KeyCtrlU:
				b.input = b.input[:0]
				b.recompute()
			case tcell.KeyRune:
				b.input = append(b.input, ev.Rune())
				b.recompute()
			}
		case *tcell.EventResize:
			b.screen.Sync()
		}
	}
}

func (b *board) cleanup() {
	b.screen.Fini()
	if b.narrator != nil {
		b.narrator.Shutdown()
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ncolorboard crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := engine.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	var narrator speech.Narrator
	if *toneFlag {
		runner, err := speech.NewRunner(cfg.Speech, &speech.ToneSynthesizer{}, speech.NewBeepPlayer(cfg.Speech))
		if err != nil {
			// Non-fatal, the board works silently
			fmt.Fprintf(os.Stderr, "Tone setup failed: %v (continuing without audio)\n", err)
		} else {
			runner.EnsureStarted()
			narrator = runner
		}
	}

	b, err := newBoard(cfg, narrator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer b.cleanup()

	b.run()
}
