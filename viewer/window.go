package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/scottkirkwood/fractals"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// configEvent carries a reloaded config into the window's event loop.
type configEvent struct {
	cfg fractals.Config
}

// runWindow opens the viewer window and blocks until it is closed.
func runWindow(ctx context.Context, s *session, configPath string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	driver.Main(func(scr screen.Screen) {
		canvas := s.canvasSize()
		w, err := scr.NewWindow(&screen.NewWindowOptions{
			Width:  canvas.X,
			Height: canvas.Y,
			Title:  "Fractals",
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		defer w.Release()

		if configPath != "" {
			watcher, err := fractals.NewConfigWatcher(configPath)
			if err != nil {
				fmt.Printf("Not watching %s: %v\n", configPath, err)
			} else {
				defer watcher.Close()
				fmt.Printf("Monitoring config %q\n", configPath)
				go watcher.Run(ctx, func(cfg fractals.Config) {
					w.Send(configEvent{cfg: cfg})
				})
			}
		}

		var (
			b     screen.Buffer
			sz    size.Event
			frame image.Rectangle
		)
		defer func() {
			if b != nil {
				b.Release()
			}
		}()

		for {
			switch e := w.NextEvent().(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case key.Event:
				redraw, quit := s.handleKey(e)
				if quit {
					return
				}
				if redraw {
					w.Send(paint.Event{})
				}

			case mouse.Event:
				if s.handleMouse(e, frame) {
					w.Send(paint.Event{})
				}

			case size.Event:
				sz = e
				frame = fitFrame(s.canvasSize(), sz.Size())

			case configEvent:
				if err := s.applyConfig(e.cfg); err != nil {
					fmt.Printf("Ignoring config: %v\n", err)
					break
				}
				frame = fitFrame(s.canvasSize(), sz.Size())
				w.Send(paint.Event{})

			case paint.Event:
				if frame.Empty() {
					break
				}
				if b == nil || b.Size() != frame.Size() {
					if b != nil {
						b.Release()
					}
					b, err = scr.NewBuffer(frame.Size())
					if err != nil {
						fmt.Println(err)
						return
					}
				}
				blit(b.RGBA(), s.draw())
				w.Fill(sz.Bounds(), color.Black, draw.Src)
				w.Upload(frame.Min, b, b.Bounds())
				w.Publish()

			case error:
				fmt.Printf("Screen error: %v\n", e)
				return
			}
		}
	})
}

// blit copies img into dst, scaling when the sizes differ.
func blit(dst *image.RGBA, img image.Image) {
	if dst.Bounds().Size() == img.Bounds().Size() {
		xdraw.Copy(dst, dst.Bounds().Min, img, img.Bounds(), xdraw.Src, nil)
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
}
