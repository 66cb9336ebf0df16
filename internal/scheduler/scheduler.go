// Package scheduler runs periodic tasks cooperatively from a single loop.
// Nothing here starts goroutines or timers: the owner calls Execute as often
// as it can, and due tasks run inline on the caller.
package scheduler

import (
	"traffic-light-service/internal/clock"
)

// Forever makes a task repeat until it is disabled.
const Forever = -1

type Task struct {
	Name       string
	Interval   uint32 // milliseconds
	Iterations int
	Callback   func(nowMillis uint32)

	enabled  bool
	started  bool
	deadline uint32
	runs     int
}

func NewTask(name string, interval uint32, iterations int, callback func(nowMillis uint32)) *Task {
	return &Task{
		Name:       name,
		Interval:   interval,
		Iterations: iterations,
		Callback:   callback,
	}
}

func (t *Task) Enabled() bool { return t.enabled }
func (t *Task) Runs() int     { return t.runs }

// Enable arms the task so that it is due on the next Execute.
func (t *Task) Enable() {
	t.enabled = true
	t.started = false
	t.runs = 0
}

func (t *Task) Disable() {
	t.enabled = false
}

type Scheduler struct {
	tasks []*Task
}

func New() *Scheduler {
	return &Scheduler{}
}

// Add registers a task. With enable set the task runs on the next Execute.
func (s *Scheduler) Add(t *Task, enable bool) {
	s.tasks = append(s.tasks, t)
	if enable {
		t.Enable()
	}
}

// Execute runs every enabled task whose deadline has been reached and
// returns how many callbacks it invoked.
//
// Deadlines advance by exactly one interval from the previous deadline, so
// late dispatches do not accumulate drift. A task that has fallen more than
// a full interval behind is re-anchored to now rather than run repeatedly
// to catch up.
func (s *Scheduler) Execute(nowMillis uint32) int {
	ran := 0
	for _, t := range s.tasks {
		if !t.enabled {
			continue
		}
		if t.started {
			// Signed view of the wrapping difference: negative means not yet due.
			if int32(clock.Since(nowMillis, t.deadline)) < 0 {
				continue
			}
			if clock.Since(nowMillis, t.deadline) >= t.Interval {
				t.deadline = nowMillis
			}
		} else {
			t.started = true
			t.deadline = nowMillis
		}

		t.deadline += t.Interval
		t.runs++
		if t.Callback != nil {
			t.Callback(nowMillis)
		}
		ran++

		if t.Iterations != Forever && t.runs >= t.Iterations {
			t.enabled = false
		}
	}
	return ran
}
