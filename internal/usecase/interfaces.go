package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/infra/integration/twilio"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type TelephonyGateway interface {
	InitiateCall(ctx context.Context, input twilio.InitiateCallInput) (sid string, status string, err error)
}

type CallEventProducerInterface interface {
	PublishCallInitiated(ctx context.Context, payload queue.CallInitiatedPayload) error
}

type EmailService interface {
	SendWelcome(to, name string) error
}
