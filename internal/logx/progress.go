package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Progress is a terminal spinner adapted from caire's utils.Spinner for
// reporting a long-running operation; no package in this module
// constructs one. It degrades to a no-op when the sink is not a terminal
// (golang.org/x/term.IsTerminal), matching caire's own spinner gating.
type Progress struct {
	mu          sync.Mutex
	writer      io.Writer
	message     string
	lastOutput  string
	interactive bool
	stopChan    chan struct{}
}

// NewProgress builds a spinner writing to w, labeled with message. The
// spinner only animates when w is a terminal.
func NewProgress(w io.Writer, message string) *Progress {
	interactive := false
	if f, ok := w.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &Progress{
		writer:      w,
		message:     message,
		interactive: interactive,
		stopChan:    make(chan struct{}, 1),
	}
}

// Start begins animating the spinner in a background goroutine. A no-op
// if the sink isn't a terminal.
func (p *Progress) Start() {
	if !p.interactive {
		return
	}
	go func() {
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-p.stopChan:
					return
				default:
					p.mu.Lock()
					out := fmt.Sprintf("\r%s %c", p.message, r)
					fmt.Fprint(p.writer, out)
					p.lastOutput = out
					p.mu.Unlock()
					time.Sleep(100 * time.Millisecond)
				}
			}
		}
	}()
}

// Update changes the displayed message without stopping the animation.
func (p *Progress) Update(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = message
}

// Stop clears the spinner line and terminates the background goroutine.
func (p *Progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.interactive {
		n := len(p.lastOutput)
		fmt.Fprint(p.writer, "\r"+strings.Repeat(" ", n)+"\r")
		p.stopChan <- struct{}{}
	}
}
