// Package loop runs a game session at a fixed tick rate: input, update
// queue, collision pass, render.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/draw"
	"github.com/tomz197/firedodge/internal/input"
)

var (
	hudFg = colorful.Color{R: 1, G: 1, B: 1}
	hudBg = colorful.Color{}
)

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Session      SessionOptions
}

// Run plays one session on the given terminal streams until the player
// quits, input closes or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	session := NewSession(opts.Session)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	cw := draw.NewChunkWriter(w)
	termWidth, termHeight, _ := termSizeFunc()
	canvas := draw.NewCanvas(termWidth, termHeight, config.WorldLeft, config.WorldRight, config.WorldBottom, config.WorldTop)

	ticker := time.NewTicker(config.TickTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		case <-ticker.C:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			draw.ClearScreen(w)
			return nil
		}

		// ===== UPDATE PHASE =====
		if err := session.Tick(in, config.TickTime); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if width, height, err := termSizeFunc(); err == nil {
			canvas.Resize(width, height)
		}
		if err := drawFrame(session, canvas, cw); err != nil {
			return err
		}
	}
}

// drawFrame renders the scene and the HUD overlay.
func drawFrame(s *Session, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	s.Scene().Draw(canvas)
	canvas.Render(cw)
	cw.WriteText(2, 1, s.HUD(), hudFg, hudBg)
	if canvas.TerminalHeight() > 2 {
		cw.WriteText(2, canvas.TerminalHeight(), "A/D move  W jump  S duck  R reset score  Q quit", hudFg, hudBg)
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
