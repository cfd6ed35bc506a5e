package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/twilio"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
)

// MockTelephonyGateway
type MockTelephonyGateway struct {
	mock.Mock
}

func (m *MockTelephonyGateway) InitiateCall(ctx context.Context, input twilio.InitiateCallInput) (string, string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.String(1), args.Error(2)
}

// MockCallLogRepository
type MockCallLogRepository struct {
	mock.Mock
}

func (m *MockCallLogRepository) Create(ctx context.Context, c *entity.CallLog) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCallLogRepository) FindAll(ctx context.Context) ([]*entity.CallLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CallLog), args.Error(1)
}

func (m *MockCallLogRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCallLogRepository) UpdateCallDetails(ctx context.Context, callSid, status string, duration int, recordingURL string) error {
	args := m.Called(ctx, callSid, status, duration, recordingURL)
	return args.Error(0)
}

// MockCallEventProducer
type MockCallEventProducer struct {
	mock.Mock
}

func (m *MockCallEventProducer) PublishCallInitiated(ctx context.Context, payload queue.CallInitiatedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func boolPtr(b bool) *bool { return &b }

func TestInitiateCallMissingFieldHasNoSideEffects(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockTelephonyGateway)
	mockCallLogs := new(MockCallLogRepository)

	uc := NewInitiateCallUseCase(mockGateway, mockCallLogs, nil)

	output, err := uc.Execute(ctx, InitiateCallInput{
		From:      "4155550200",
		ContactID: "c1",
		// To missing
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))

	mockGateway.AssertNotCalled(t, "InitiateCall")
	mockCallLogs.AssertNotCalled(t, "Create")
}

func TestInitiateCallSuccessWritesOneLogRow(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockTelephonyGateway)
	mockCallLogs := new(MockCallLogRepository)
	mockEvents := new(MockCallEventProducer)

	mockGateway.On("InitiateCall", ctx, twilio.InitiateCallInput{
		To:     "+14155550100",
		From:   "+14155550200",
		Record: true,
	}).Return("CA123", "queued", nil)

	mockCallLogs.On("Create", ctx, mock.MatchedBy(func(c *entity.CallLog) bool {
		return c.ContactID == "c1" &&
			c.CallSid == "CA123" &&
			c.CallType == "outbound" &&
			c.Status == "initiated" &&
			c.Notes == "Call initiated to +14155550100"
	})).Return(nil)

	mockEvents.On("PublishCallInitiated", ctx, mock.Anything).Return(nil)

	uc := NewInitiateCallUseCase(mockGateway, mockCallLogs, mockEvents)

	output, err := uc.Execute(ctx, InitiateCallInput{
		To:        "(415) 555-0100",
		From:      "4155550200",
		ContactID: "c1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "CA123", output.CallSid)
	assert.Equal(t, "queued", output.Status)
	assert.Equal(t, "Call initiated successfully", output.Message)

	mockCallLogs.AssertNumberOfCalls(t, "Create", 1)
	mockEvents.AssertCalled(t, "PublishCallInitiated", ctx, mock.Anything)
}

func TestInitiateCallGatewayFailureWritesNothing(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockTelephonyGateway)
	mockCallLogs := new(MockCallLogRepository)

	mockGateway.On("InitiateCall", ctx, mock.Anything).Return("", "", errors.New("provider returned status 401"))

	uc := NewInitiateCallUseCase(mockGateway, mockCallLogs, nil)

	output, err := uc.Execute(ctx, InitiateCallInput{
		To:        "4155550100",
		From:      "4155550200",
		ContactID: "c1",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))

	mockCallLogs.AssertNotCalled(t, "Create")
}

func TestInitiateCallLogWriteFailureStillSucceeds(t *testing.T) {
	// The call already happened; losing the log row must not fail the request.
	ctx := context.Background()

	mockGateway := new(MockTelephonyGateway)
	mockCallLogs := new(MockCallLogRepository)

	mockGateway.On("InitiateCall", ctx, mock.Anything).Return("CA123", "queued", nil)
	mockCallLogs.On("Create", ctx, mock.Anything).Return(errors.New("database error"))

	uc := NewInitiateCallUseCase(mockGateway, mockCallLogs, nil)

	output, err := uc.Execute(ctx, InitiateCallInput{
		To:        "4155550100",
		From:      "4155550200",
		ContactID: "c1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "CA123", output.CallSid)
}

func TestInitiateCallRecordFlagPassedThrough(t *testing.T) {
	ctx := context.Background()

	mockGateway := new(MockTelephonyGateway)
	mockCallLogs := new(MockCallLogRepository)

	mockGateway.On("InitiateCall", ctx, twilio.InitiateCallInput{
		To:     "+14155550100",
		From:   "+14155550200",
		Record: false,
	}).Return("CA456", "queued", nil)
	mockCallLogs.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewInitiateCallUseCase(mockGateway, mockCallLogs, nil)

	output, err := uc.Execute(ctx, InitiateCallInput{
		To:         "4155550100",
		From:       "4155550200",
		ContactID:  "c1",
		RecordCall: boolPtr(false),
	})

	assert.NoError(t, err)
	assert.Equal(t, "CA456", output.CallSid)
	mockGateway.AssertExpectations(t)
}
