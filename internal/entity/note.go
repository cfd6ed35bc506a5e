package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ContactID string    `json:"contact_id,omitempty"`
	DealID    string    `json:"deal_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNote(content, contactID, dealID string) *Note {
	return &Note{
		ID:        uuid.New().String(),
		Content:   content,
		ContactID: contactID,
		DealID:    dealID,
		CreatedAt: time.Now(),
	}
}

type NoteRepositoryInterface interface {
	Create(ctx context.Context, n *Note) error
	FindAll(ctx context.Context) ([]*Note, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
