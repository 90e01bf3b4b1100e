// Package editor is the in-memory edit model for an extracted task list.
// Extraction results are immutable; all review edits (retitle, reprioritize,
// deselect, delete) happen on a Session copy, with snapshot-based undo.
package editor

import (
	"errors"
	"sync"

	"tasklens/internal/model"
)

// MaxSnapshots bounds the undo stack per session.
const MaxSnapshots = 50

var (
	// ErrTaskNotFound means no task in the session has the given id.
	ErrTaskNotFound = errors.New("task not found in session")

	// ErrNothingToUndo means the session has no snapshots left.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// TaskPatch is a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title        *string
	Description  *string
	Priority     *model.Priority
	Category     *model.Category
	Assignee     *string
	DueDate      *string
	TimeEstimate *model.TimeEstimate
	Selected     *bool
}

// Session holds one result's task list under edit. Safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	tasks     []model.Task
	snapshots [][]model.Task
}

// NewSession starts an edit session over a deep copy of tasks.
func NewSession(tasks []model.Task) *Session {
	return &Session{tasks: copyTasks(tasks)}
}

// Tasks returns a deep copy of the session's current task list.
func (s *Session) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTasks(s.tasks)
}

// Update applies a partial update to the task with the given id.
func (s *Session) Update(id string, patch TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}
	s.snapshot()

	t := &s.tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.TimeEstimate != nil {
		t.TimeEstimate = *patch.TimeEstimate
	}
	if patch.Selected != nil {
		t.Selected = *patch.Selected
	}
	return nil
}

// Remove deletes the task with the given id from the session.
func (s *Session) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}
	s.snapshot()
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return nil
}

// ToggleSelected flips the export selection of the task with the given id.
func (s *Session) ToggleSelected(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrTaskNotFound
	}
	s.snapshot()
	s.tasks[idx].Selected = !s.tasks[idx].Selected
	return nil
}

// Undo restores the task list to the state before the last mutation.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.snapshots) == 0 {
		return ErrNothingToUndo
	}
	last := len(s.snapshots) - 1
	s.tasks = s.snapshots[last]
	s.snapshots = s.snapshots[:last]
	return nil
}

// CanUndo reports whether the session has snapshots to restore.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.snapshots) > 0
}

func (s *Session) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// snapshot pushes the current state onto the undo stack. Callers hold s.mu.
func (s *Session) snapshot() {
	s.snapshots = append(s.snapshots, copyTasks(s.tasks))
	if len(s.snapshots) > MaxSnapshots {
		s.snapshots = s.snapshots[1:]
	}
}

// copyTasks deep-copies the slice members that alias backing arrays.
func copyTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if len(out[i].SubTasks) > 0 {
			subs := make([]model.SubTask, len(out[i].SubTasks))
			copy(subs, out[i].SubTasks)
			out[i].SubTasks = subs
		}
		if len(out[i].Attendees) > 0 {
			att := make([]string, len(out[i].Attendees))
			copy(att, out[i].Attendees)
			out[i].Attendees = att
		}
		if out[i].Recurring != nil {
			rec := *out[i].Recurring
			out[i].Recurring = &rec
		}
	}
	return out
}
