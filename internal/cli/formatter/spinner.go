package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerDelay is how long a request may run before the spinner appears.
// Most report fetches finish sooner and never draw anything.
const SpinnerDelay = 150 * time.Millisecond

const spinnerInterval = 80 * time.Millisecond

// Spinner shows a request in progress on one line of out, usually stderr.
// After a few seconds it also shows the elapsed time, which matters when
// the API is slow enough to approach the client timeout.
type Spinner struct {
	out     io.Writer
	message string
	delay   time.Duration

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// NewSpinner creates a spinner that draws message to out once delay passed.
func NewSpinner(out io.Writer, message string, delay time.Duration) *Spinner {
	return &Spinner{
		out:     out,
		message: message,
		delay:   delay,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation in the background.
func (s *Spinner) Start() {
	go s.run(time.Now())
}

func (s *Spinner) run(started time.Time) {
	defer close(s.done)

	wait := time.NewTimer(s.delay)
	defer wait.Stop()
	select {
	case <-s.stop:
		return
	case <-wait.C:
	}

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		frame := spinnerFrames[i%len(spinnerFrames)]
		line := fmt.Sprintf("\r  %s %s", StylePurple.Render(frame), Dim(s.message))
		if elapsed := time.Since(started); elapsed >= 3*time.Second {
			line += Dim(fmt.Sprintf(" %ds", int(elapsed.Seconds())))
		}
		fmt.Fprint(s.out, line)

		select {
		case <-s.stop:
			fmt.Fprint(s.out, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// Stop ends the animation and clears its line. It waits for the last frame
// so nothing is drawn after it returns, and may be called more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// StartSpinner starts a spinner with SpinnerDelay and returns its Stop.
func StartSpinner(out io.Writer, message string) func() {
	s := NewSpinner(out, message, SpinnerDelay)
	s.Start()
	return s.Stop
}
