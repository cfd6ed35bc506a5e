package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PipelineStages is the display order for the kanban board. The stage column
// itself is free text; unknown values simply don't show up in the pipeline
// aggregation.
var PipelineStages = []string{"lead", "qualified", "proposal", "negotiation", "won", "lost"}

type Deal struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Value             float64   `json:"value"`
	Stage             string    `json:"stage"`
	ContactID         string    `json:"contact_id,omitempty"`
	ExpectedCloseDate string    `json:"expected_close_date,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewDeal(title string, value float64, stage, contactID, expectedCloseDate string) *Deal {
	if stage == "" {
		stage = "lead"
	}
	now := time.Now()
	return &Deal{
		ID:                uuid.New().String(),
		Title:             title,
		Value:             value,
		Stage:             stage,
		ContactID:         contactID,
		ExpectedCloseDate: expectedCloseDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// StageSummary is one kanban column: deals in a stage plus their value total.
type StageSummary struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type DealRepositoryInterface interface {
	Create(ctx context.Context, d *Deal) error
	FindAll(ctx context.Context) ([]*Deal, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
