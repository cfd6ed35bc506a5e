package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	CallTypeOutbound = "outbound"
	CallTypeInbound  = "inbound"
)

// CallLog is written exactly once when an outbound call is initiated.
// Duration, Status and RecordingURL start at their zero values and are only
// filled in later by the call-event worker, never by the initiate flow.
type CallLog struct {
	ID           string    `json:"id"`
	ContactID    string    `json:"contact_id"`
	CallSid      string    `json:"call_sid"`
	CallType     string    `json:"call_type"`
	Status       string    `json:"status"`
	Duration     int       `json:"duration"`
	RecordingURL string    `json:"recording_url,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewCallLog(contactID, callSid, callType, status, notes string) *CallLog {
	return &CallLog{
		ID:        uuid.New().String(),
		ContactID: contactID,
		CallSid:   callSid,
		CallType:  callType,
		Status:    status,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}

type CallLogRepositoryInterface interface {
	Create(ctx context.Context, c *CallLog) error
	FindAll(ctx context.Context) ([]*CallLog, error)
	Count(ctx context.Context) (int, error)
	UpdateCallDetails(ctx context.Context, callSid, status string, duration int, recordingURL string) error
}
