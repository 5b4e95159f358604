package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// Spinner is an animated waiting indicator drawn on a single line.
// Stop erases the line. A stopped Spinner can be started again.
type Spinner struct {
	out     io.Writer
	message string
	enabled bool

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// NewSpinner creates a spinner writing to out. A disabled spinner draws nothing.
func NewSpinner(out io.Writer, message string, enabled bool) *Spinner {
	return &Spinner{out: out, message: message, enabled: enabled}
}

// Start begins the animation. Calling Start on a running spinner does nothing.
func (s *Spinner) Start() {
	if !s.enabled {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.loop(s.stop, s.done)
}

// Stop ends the animation, erases the line and waits for the goroutine to exit
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done
}

func (s *Spinner) loop(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	// hide cursor
	fmt.Fprint(s.out, "\033[?25l")
	frame := 0
	s.draw(frame)

	for {
		select {
		case <-stop:
			fmt.Fprint(s.out, "\r\033[K\033[?25h")
			return
		case <-ticker.C:
			frame++
			s.draw(frame)
		}
	}
}

func (s *Spinner) draw(frame int) {
	color := gradientColors[frame%len(gradientColors)]
	char := lipgloss.NewStyle().Foreground(color).Bold(true).Render(spinnerFrames[frame%len(spinnerFrames)])

	var dots strings.Builder
	lit := (frame / 3) % 4
	for i := 0; i < 3; i++ {
		if i < lit {
			dots.WriteString(lipgloss.NewStyle().Foreground(gradientColors[(frame+i)%len(gradientColors)]).Render("●"))
		} else {
			dots.WriteString(lipgloss.NewStyle().Foreground(ColorTextMute).Render("○"))
		}
	}

	msg := lipgloss.NewStyle().Foreground(ColorText).Render(s.message)
	fmt.Fprintf(s.out, "\r\033[K%s %s %s", char, msg, dots.String())
}
