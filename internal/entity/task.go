package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ContactID   string    `json:"contact_id,omitempty"`
	DealID      string    `json:"deal_id,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTask(title, description, contactID, dealID, dueDate string) *Task {
	return &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		ContactID:   contactID,
		DealID:      dealID,
		DueDate:     dueDate,
		Status:      TaskStatusPending,
		CreatedAt:   time.Now(),
	}
}

type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *Task) error
	FindAll(ctx context.Context) ([]*Task, error)
	Count(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
