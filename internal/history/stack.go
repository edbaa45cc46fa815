package history

import (
	"github.com/vovakirdan/game-maker/internal/core"
)

// StepDirection says which half of a step was the original edit.
type StepDirection int

const (
	Forward StepDirection = iota
	Back
)

// Flip returns the other direction.
func (d StepDirection) Flip() StepDirection {
	if d == Forward {
		return Back
	}
	return Forward
}

func (d StepDirection) String() string {
	if d == Back {
		return "Back"
	}
	return "Forward"
}

// Step is an applied event and its inverse.
type Step struct {
	Forward   Event
	Back      Event
	Direction StepDirection
}

// Undoing returns the event that reverts the step.
func (s Step) Undoing() Event {
	if s.Direction == Forward {
		return s.Back
	}
	return s.Forward
}

// Redoing returns the event that performs the step again.
func (s Step) Redoing() Event {
	if s.Direction == Forward {
		return s.Forward
	}
	return s.Back
}

// Name is the label shown in the history list.
func (s Step) Name() string {
	if s.Direction == Back {
		return "Undo " + s.Forward.String()
	}
	return s.Forward.String()
}

// Stack holds the undo and redo steps of one editing session.
type Stack struct {
	Undo []Step
	Redo []Step

	log core.Logger
}

// NewStack creates an empty stack. A nil logger discards messages.
func NewStack(logger core.Logger) *Stack {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Stack{log: logger}
}

func (s *Stack) logger() core.Logger {
	if s.log == nil {
		return core.NopLogger{}
	}
	return s.log
}

// Record applies events in order, recording a step for each one that
// changed the target, and returns the recorded steps.
//
// Before each event any pending redo steps are folded into the undo stack:
// first as they are, newest first, then flipped in their original order. The
// undo stack then walks back through every state the session visited.
func (s *Stack) Record(events []Event, t *Target) []Step {
	var recorded []Step
	for _, e := range events {
		back := Inverse(e, t)

		for i := len(s.Redo) - 1; i >= 0; i-- {
			s.Undo = append(s.Undo, s.Redo[i])
		}
		for _, step := range s.Redo {
			step.Direction = step.Direction.Flip()
			s.Undo = append(s.Undo, step)
		}
		s.Redo = nil

		if back == nil || !Apply(e, t) {
			s.logger().Debug("Didn't apply event", "event", e.String())
			continue
		}
		step := Step{Forward: e, Back: back, Direction: Forward}
		s.Undo = append(s.Undo, step)
		recorded = append(recorded, step)
		s.logger().Debug(step.Name())
	}
	return recorded
}

// UndoStep reverts the newest undo step and moves it onto the redo stack.
func (s *Stack) UndoStep(t *Target) (Step, bool) {
	if len(s.Undo) == 0 {
		return Step{}, false
	}
	step := s.Undo[len(s.Undo)-1]
	s.Undo = s.Undo[:len(s.Undo)-1]
	if !Apply(step.Undoing(), t) {
		s.logger().Debug("Didn't apply event", "event", step.Undoing().String())
	}
	s.Redo = append(s.Redo, step)
	s.logger().Debug("Undo", "step", step.Name())
	if t.Music != nil {
		t.Music.RefreshSong()
	}
	return step, true
}

// RedoStep re-applies the newest redo step and moves it back onto the undo
// stack.
func (s *Stack) RedoStep(t *Target) (Step, bool) {
	if len(s.Redo) == 0 {
		return Step{}, false
	}
	step := s.Redo[len(s.Redo)-1]
	s.Redo = s.Redo[:len(s.Redo)-1]
	if !Apply(step.Redoing(), t) {
		s.logger().Debug("Didn't apply event", "event", step.Redoing().String())
	}
	s.Undo = append(s.Undo, step)
	s.logger().Debug("Redo", "step", step.Name())
	if t.Music != nil {
		t.Music.RefreshSong()
	}
	return step, true
}

// CanUndo reports whether there is a step to undo.
func (s *Stack) CanUndo() bool { return len(s.Undo) > 0 }

// CanRedo reports whether there is a step to redo.
func (s *Stack) CanRedo() bool { return len(s.Redo) > 0 }

// Clear drops every step.
func (s *Stack) Clear() {
	s.Undo = nil
	s.Redo = nil
}

// Names lists the undo steps oldest first, for the history viewer.
func (s *Stack) Names() []string {
	names := make([]string, len(s.Undo))
	for i, step := range s.Undo {
		names[i] = step.Name()
	}
	return names
}
