package actions

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultResetDelay is how long a copy button shows its check mark.
const DefaultResetDelay = time.Second

// State is the visual state of a copy button.
type State int

const (
	Idle State = iota
	JustCopied
)

func (s State) String() string {
	if s == JustCopied {
		return "copied"
	}
	return "idle"
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// resetMsg returns an indicator to Idle if it still belongs to the latest trigger.
type resetMsg struct {
	id  int
	gen int
}

// Indicator is the Idle/JustCopied state machine behind a copy button.
// Each trigger bumps the generation, which cancels any reset still in flight.
type Indicator struct {
	id    int
	gen   int
	state State
	delay time.Duration
}

// NewIndicator returns an idle indicator that resets after delay.
func NewIndicator(delay time.Duration) Indicator {
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	return Indicator{id: nextID(), delay: delay}
}

// State returns the current state.
func (i Indicator) State() State {
	return i.state
}

// Trigger moves to JustCopied and schedules the reset.
func (i Indicator) Trigger() (Indicator, tea.Cmd) {
	i.state = JustCopied
	i.gen++
	id, gen := i.id, i.gen
	return i, tea.Tick(i.delay, func(time.Time) tea.Msg {
		return resetMsg{id: id, gen: gen}
	})
}

// Update handles reset messages. Stale resets are ignored.
func (i Indicator) Update(msg tea.Msg) Indicator {
	if m, ok := msg.(resetMsg); ok && m.id == i.id && m.gen == i.gen {
		i.state = Idle
	}
	return i
}
