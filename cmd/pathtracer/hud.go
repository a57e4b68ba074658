package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rayforge/pathtracer/viewport"
)

// dashboard draws per-frame ray counters to a terminal screen, grounded
// on vi-fighter's tcell.NewScreen/screen.Init/defer screen.Fini setup.
type dashboard struct {
	screen tcell.Screen
}

func newDashboard() (*dashboard, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()
	return &dashboard{screen: screen}, nil
}

func (d *dashboard) Close() {
	d.screen.Fini()
}

// Run drains counters until ch is closed, redrawing the dashboard on
// every frame.
func (d *dashboard) Run(ch <-chan viewport.FrameCounters) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for fc := range ch {
		d.screen.Clear()
		lines := []string{
			fmt.Sprintf("frame %d", fc.FrameID),
			fmt.Sprintf("primary rays:      %d", fc.Counters.PrimaryRays),
			fmt.Sprintf("shadow rays:       %d", fc.Counters.ShadowRays),
			fmt.Sprintf("reflection rays:   %d", fc.Counters.ReflectionRays),
			fmt.Sprintf("transparency rays: %d", fc.Counters.TransparencyRays),
			fmt.Sprintf("diffuse rays:      %d", fc.Counters.DiffuseRays),
		}
		for row, line := range lines {
			for col, r := range line {
				d.screen.SetContent(col, row, r, nil, style)
			}
		}
		d.screen.Show()
	}
}
