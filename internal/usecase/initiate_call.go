package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/twilio"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

type InitiateCallInput struct {
	To        string `json:"to"`
	From      string `json:"from"`
	ContactID string `json:"contactId"`

	// Pointer so an absent field defaults to true rather than false.
	RecordCall *bool `json:"recordCall"`
}

type CallResult struct {
	CallSid string `json:"callSid"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type InitiateCallUseCase struct {
	Gateway  TelephonyGateway
	CallLogs entity.CallLogRepositoryInterface
	Events   CallEventProducerInterface
}

func NewInitiateCallUseCase(
	gateway TelephonyGateway,
	callLogs entity.CallLogRepositoryInterface,
	events CallEventProducerInterface,
) *InitiateCallUseCase {
	return &InitiateCallUseCase{
		Gateway:  gateway,
		CallLogs: callLogs,
		Events:   events,
	}
}

// Execute runs the whole outbound-call flow: validate, normalize both
// numbers, place the call, then log it. The log write happens strictly after
// the call was placed (log-after-effect), so a crash in between loses the
// log row but never fabricates one for a call that did not happen.
func (uc *InitiateCallUseCase) Execute(ctx context.Context, input InitiateCallInput) (*CallResult, error) {
	if errs := ValidateInitiateCallInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "Missing required fields: to, from, contactId",
		}
	}

	to := FormatPhoneNumber(input.To)
	from := FormatPhoneNumber(input.From)

	record := true
	if input.RecordCall != nil {
		record = *input.RecordCall
	}

	sid, status, err := uc.Gateway.InitiateCall(ctx, twilio.InitiateCallInput{
		To:     to,
		From:   from,
		Record: record,
	})
	if err != nil {
		log.Printf("call initiation rejected for contact %s: %v", input.ContactID, err)
		middleware.RecordIntegrationError("twilio")
		return nil, &TechnicalError{
			Code:    "CALL_FAILED",
			Message: "Failed to initiate call",
		}
	}

	entry := entity.NewCallLog(
		input.ContactID,
		sid,
		entity.CallTypeOutbound,
		"initiated",
		"Call initiated to "+to,
	)

	// The call already happened; a failed insert is logged and counted but
	// must not turn a real call into an error response.
	if err := uc.CallLogs.Create(ctx, entry); err != nil {
		log.Printf("call log write lost for sid %s: %v", sid, err)
		middleware.RecordCallLogWriteFailure()
	}

	if uc.Events != nil {
		payload := queue.CallInitiatedPayload{
			CallSid:   sid,
			ContactID: input.ContactID,
			To:        to,
		}
		if err := uc.Events.PublishCallInitiated(ctx, payload); err != nil {
			log.Printf("call event publish failed for sid %s: %v", sid, err)
		}
	}

	return &CallResult{
		CallSid: sid,
		Status:  status,
		Message: "Call initiated successfully",
	}, nil
}
