// Package ticker schedules periodic work on the Bubble Tea event loop.
//
// A Task emits TickMsg values at a fixed interval. Every tick must be
// handed back through Accept, which re-arms the next one; Cancel stops the
// chain, and any tick already in flight is dropped on arrival.
package ticker

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered to Update once per interval.
type TickMsg struct {
	ID  int
	tag int
}

// Task is a cancellable periodic schedule.
type Task struct {
	id       int
	tag      int
	interval time.Duration
	running  bool
}

func New(interval time.Duration) *Task {
	return &Task{id: nextID(), interval: interval}
}

func (t *Task) ID() int { return t.id }

func (t *Task) Running() bool { return t.running }

// Start arms the first tick. Starting a running task restarts its chain.
func (t *Task) Start() tea.Cmd {
	t.running = true
	t.tag++
	return t.tick()
}

// Cancel stops the schedule.
func (t *Task) Cancel() {
	t.running = false
	t.tag++
}

// Accept reports whether msg is a live tick of this task and, if so,
// returns the command for the next one.
func (t *Task) Accept(msg TickMsg) (bool, tea.Cmd) {
	if !t.running || msg.ID != t.id || msg.tag != t.tag {
		return false, nil
	}
	return true, t.tick()
}

func (t *Task) tick() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag}
	})
}
