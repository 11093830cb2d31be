// Package scheduler runs tasks cooperatively on a single thread of control.
// Exactly one task runs at a time and control changes hands only when the
// running task yields or returns. Suspended tasks are resumed in FIFO order.
package scheduler

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"
)

type State int

const (
	Created State = iota
	Running
	Suspended
	Terminated
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Entry is the body of a task. Returning from it terminates the task.
type Entry func(t *Task)

type Task struct {
	name  string
	state State
	sched *Scheduler

	yield func(struct{}) bool
	next  func() (struct{}, bool)
	stop  func()
}

func (t *Task) Name() string {
	return t.name
}

func (t *Task) State() State {
	return t.state
}

// Yield puts t at the tail of the ready queue and hands control back to the
// scheduler. It returns once t is resumed, or false if the scheduler is
// tearing t down, in which case the entry should return.
func (t *Task) Yield() bool {
	if t.sched.current != t {
		panic(fmt.Sprintf("task %s yields while not running", t.name))
	}
	t.sched.ready = append(t.sched.ready, t)
	t.state = Suspended
	return t.yield(struct{}{})
}

type Scheduler struct {
	tasks    []*Task
	ready    []*Task
	current  *Task
	running  bool
	switches int
}

func New() *Scheduler {
	return &Scheduler{}
}

// Register adds a task without starting it.
func (s *Scheduler) Register(name string, entry Entry) *Task {
	if s.running {
		panic("scheduler: register while running")
	}
	t := &Task{name: name, state: Created, sched: s}
	seq := func(yield func(struct{}) bool) {
		t.yield = yield
		// Initial handoff: the task becomes current, queues itself and
		// returns control before its body runs.
		if !t.Yield() {
			return
		}
		entry(t)
	}
	t.next, t.stop = iter.Pull(iter.Seq[struct{}](seq))
	s.tasks = append(s.tasks, t)
	return t
}

// Run starts every registered task in registration order and then resumes
// the head of the ready queue until no task is left.
func (s *Scheduler) Run() {
	s.running = true
	defer func() {
		s.running = false
		s.current = nil
		s.ready = nil
		for _, t := range s.tasks {
			if t.state != Terminated {
				t.stop()
				t.state = Terminated
			}
		}
	}()

	for _, t := range s.tasks {
		if t.state == Created {
			s.resume(t)
		}
	}
	for len(s.ready) > 0 {
		t := s.ready[0]
		s.ready[0] = nil
		s.ready = s.ready[1:]
		s.resume(t)
	}
}

func (s *Scheduler) resume(t *Task) {
	log.Debug().Str("task", t.name).Int("queued", len(s.ready)).Msg("resume")
	s.current = t
	t.state = Running
	s.switches++
	_, ok := t.next()
	s.current = nil
	if !ok {
		t.state = Terminated
		log.Debug().Str("task", t.name).Msg("terminated")
	}
}

// Current returns the running task, or nil between resumptions.
func (s *Scheduler) Current() *Task {
	return s.current
}

// Tasks lists registered tasks in registration order.
func (s *Scheduler) Tasks() []*Task {
	return append([]*Task(nil), s.tasks...)
}

// Switches counts the resumptions performed by Run.
func (s *Scheduler) Switches() int {
	return s.switches
}
