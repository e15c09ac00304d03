package tasks

import "sync"

// Repository owns the live tasks of a session, keyed by ID.
// IDs come from a counter that only moves forward, so deleted IDs are never
// handed out again and insertion order equals ascending ID order.
type Repository struct {
	mu     sync.RWMutex
	tasks  map[int]*Task
	order  []int
	nextID int
}

// NewRepository creates an empty repository whose first task gets ID 1.
func NewRepository() *Repository {
	return &Repository{
		tasks:  make(map[int]*Task),
		nextID: 1,
	}
}

// Create validates and stores a new task. The counter only advances when the
// task is accepted.
func (r *Repository) Create(title, description string) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := NewTask(r.nextID, title, description, false)
	if err != nil {
		return Task{}, err
	}
	r.nextID++

	r.tasks[t.ID] = &t
	r.order = append(r.order, t.ID)
	return t, nil
}

// Get returns a copy of the task with the given ID.
func (r *Repository) Get(id int) (Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

// Update applies u to the task with the given ID.
// Returns ErrNotFound when absent, or an InvalidTaskError when u is rejected;
// in both cases nothing changes.
func (r *Repository) Update(id int, u TaskUpdate) (Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	if err := t.Update(u); err != nil {
		return Task{}, err
	}
	return *t, nil
}

// Delete removes the task and reports whether it existed.
func (r *Repository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false
	}
	delete(r.tasks, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns copies of all tasks in insertion order.
func (r *Repository) List() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.tasks[id])
	}
	return out
}

// Len returns the number of live tasks.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// MarkComplete marks the task done and returns it.
func (r *Repository) MarkComplete(id int) (Task, bool) {
	return r.toggle(id, (*Task).MarkComplete)
}

// MarkIncomplete marks the task not done and returns it.
func (r *Repository) MarkIncomplete(id int) (Task, bool) {
	return r.toggle(id, (*Task).MarkIncomplete)
}

func (r *Repository) toggle(id int, fn func(*Task)) (Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, false
	}
	fn(t)
	return *t, true
}
