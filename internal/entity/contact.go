package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmailAlreadyExists = errors.New("a contact with this email already exists")

type Contact struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContact assigns the ID and timestamps server-side
func NewContact(firstName, lastName, email, phone, company, position string) *Contact {
	now := time.Now()
	return &Contact{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Company:   company,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *Contact) error
	FindAll(ctx context.Context) ([]*Contact, error)
	FindRecent(ctx context.Context, limit int) ([]*Contact, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
