package a2a

import (
	"errors"
	"sync"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskNotCancelable = errors.New("task cannot be canceled")
)

// TaskStore keeps every task an agent has produced for the life of the process.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[string]Task)}
}

func (s *TaskStore) Put(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
}

func (s *TaskStore) Get(id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return t, nil
}

// Cancel moves a non-terminal task to canceled.
func (s *TaskStore) Cancel(id string, status TaskStatus) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	if t.Status.State.Terminal() {
		return Task{}, ErrTaskNotCancelable
	}
	status.State = TaskStateCanceled
	t.Status = status
	s.tasks[id] = t
	return t, nil
}

func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
