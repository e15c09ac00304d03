// Package tasks provides the in-memory task list: validated task records and
// the repository that owns them.
package tasks

import "strings"

// Task represents one entry of the task list.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"` // empty = no description
	Completed   bool   `json:"completed" yaml:"completed"`
}

// TaskUpdate carries the fields to replace on a task.
// A nil field is left unchanged; a non-nil empty Description clears it.
type TaskUpdate struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the update names no field at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

// NewTask builds a validated task. Fields are stored as given.
func NewTask(id int, title, description string, completed bool) (Task, error) {
	if id <= 0 {
		return Task{}, invalid("id", "must be a positive integer")
	}
	if _, err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	}, nil
}

// MarkComplete sets the task as done.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// MarkIncomplete sets the task as not done.
func (t *Task) MarkIncomplete() {
	t.Completed = false
}

// Update applies u atomically: every provided field is validated before any
// of them is written.
func (t *Task) Update(u TaskUpdate) error {
	if u.Title != nil {
		if _, err := ValidateTitle(*u.Title); err != nil {
			return err
		}
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	return nil
}

// ValidateTitle returns the trimmed title, or an InvalidTaskError when it is blank.
// Callers reading user input use the trimmed value; a Task keeps its title as given.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", invalid("title", "cannot be empty")
	}
	return trimmed, nil
}
