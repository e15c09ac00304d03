package tasks

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestNewTask(t *testing.T) {
	task, err := NewTask(1, "  Buy milk  ", "2 litres", false)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("ID: got %d, want 1", task.ID)
	}
	if task.Title != "  Buy milk  " {
		t.Errorf("Title: got %q, want it stored as given", task.Title)
	}
	if task.Description != "2 litres" {
		t.Errorf("Description: got %q, want %q", task.Description, "2 litres")
	}
	if task.Completed {
		t.Error("expected new task to be incomplete")
	}
}

func TestNewTask_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		id    int
		title string
		field string
	}{
		{"zero id", 0, "Task", "id"},
		{"negative id", -4, "Task", "id"},
		{"empty title", 1, "", "title"},
		{"blank title", 1, "   ", "title"},
		{"tabs and newlines", 1, "\t\n", "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.id, tt.title, "", false)
			if !errors.Is(err, ErrInvalidTask) {
				t.Fatalf("expected ErrInvalidTask, got %v", err)
			}
			var ite *InvalidTaskError
			if !errors.As(err, &ite) {
				t.Fatalf("expected *InvalidTaskError, got %T", err)
			}
			if ite.Field != tt.field {
				t.Errorf("Field: got %q, want %q", ite.Field, tt.field)
			}
		})
	}
}

func TestTaskMarkCompleteIdempotent(t *testing.T) {
	task, _ := NewTask(1, "Task", "", false)

	task.MarkComplete()
	task.MarkComplete()
	if !task.Completed {
		t.Fatal("expected completed after MarkComplete")
	}

	task.MarkIncomplete()
	task.MarkIncomplete()
	if task.Completed {
		t.Fatal("expected incomplete after MarkIncomplete")
	}
}

func TestTaskUpdate(t *testing.T) {
	task, _ := NewTask(1, "Old", "old desc", false)

	if err := task.Update(TaskUpdate{Title: strPtr(" New ")}); err != nil {
		t.Fatalf("Update title: %v", err)
	}
	if task.Title != " New " {
		t.Errorf("Title: got %q, want %q", task.Title, " New ")
	}
	if task.Description != "old desc" {
		t.Errorf("Description changed to %q on title-only update", task.Description)
	}

	if err := task.Update(TaskUpdate{Description: strPtr("")}); err != nil {
		t.Fatalf("Update description: %v", err)
	}
	if task.Description != "" {
		t.Errorf("Description: got %q, want cleared", task.Description)
	}
	if task.Title != " New " {
		t.Errorf("Title changed to %q on description-only update", task.Title)
	}

	if err := task.Update(TaskUpdate{}); err != nil {
		t.Fatalf("empty Update: %v", err)
	}
	if task.Title != " New " || task.Description != "" {
		t.Errorf("empty Update changed task: %+v", task)
	}
}

func TestTaskUpdate_RejectedTitleIsAtomic(t *testing.T) {
	task, _ := NewTask(1, "Keep", "keep desc", true)

	err := task.Update(TaskUpdate{Title: strPtr("  "), Description: strPtr("lost")})
	if !errors.Is(err, ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask, got %v", err)
	}
	if task.Title != "Keep" {
		t.Errorf("Title: got %q, want %q", task.Title, "Keep")
	}
	if task.Description != "keep desc" {
		t.Errorf("Description: got %q, want %q", task.Description, "keep desc")
	}
	if !task.Completed {
		t.Error("Completed flipped by a rejected update")
	}
}

func TestTaskUpdateIsEmpty(t *testing.T) {
	if !(TaskUpdate{}).IsEmpty() {
		t.Error("zero TaskUpdate should be empty")
	}
	if (TaskUpdate{Description: strPtr("")}).IsEmpty() {
		t.Error("update clearing the description is not empty")
	}
}

func TestValidateTitle(t *testing.T) {
	got, err := ValidateTitle("\tWrite docs \n")
	if err != nil {
		t.Fatalf("ValidateTitle: %v", err)
	}
	if got != "Write docs" {
		t.Errorf("got %q, want %q", got, "Write docs")
	}
	if _, err := ValidateTitle(" "); !errors.Is(err, ErrInvalidTask) {
		t.Errorf("expected ErrInvalidTask, got %v", err)
	}
}
