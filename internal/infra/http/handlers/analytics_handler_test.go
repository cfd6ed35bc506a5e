package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/ligue-crm/internal/entity"
)

func newAnalyticsMocks() (*MockContactRepository, *MockDealRepository, *MockCallLogRepository, *MockTaskRepository, *MockNoteRepository) {
	return new(MockContactRepository), new(MockDealRepository), new(MockCallLogRepository),
		new(MockTaskRepository), new(MockNoteRepository)
}

func TestAnalyticsSummaryComputesDealMetrics(t *testing.T) {
	contacts, deals, calls, tasks, notes := newAnalyticsMocks()

	deals.On("FindAll", mock.Anything).Return([]*entity.Deal{
		{Stage: "won", Value: 10000},
		{Stage: "won", Value: 5000},
		{Stage: "lost", Value: 7000},
		{Stage: "proposal", Value: 4000},
	}, nil)
	tasks.On("FindAll", mock.Anything).Return([]*entity.Task{
		{Status: "pending"},
		{Status: "completed"},
		{Status: "pending"},
	}, nil)
	contacts.On("Count", mock.Anything).Return(12, nil)
	calls.On("Count", mock.Anything).Return(7, nil)
	notes.On("Count", mock.Anything).Return(3, nil)

	handler := NewAnalyticsHandler(contacts, deals, calls, tasks, notes)

	req := httptest.NewRequest("GET", "/api/analytics/summary", nil)
	w := httptest.NewRecorder()
	handler.HandleSummary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary AnalyticsSummary
	json.NewDecoder(w.Body).Decode(&summary)

	assert.Equal(t, 15000.0, summary.TotalRevenue)
	assert.Equal(t, 4000.0, summary.PipelineValue)
	assert.Equal(t, 6500.0, summary.AvgDealSize)
	assert.Equal(t, 50.0, summary.ConversionRate)
	assert.Equal(t, 2, summary.WonDeals)
	assert.Equal(t, 12, summary.TotalContacts)
	assert.Equal(t, 4, summary.TotalDeals)
	assert.Equal(t, 7, summary.TotalCalls)
	assert.Equal(t, 2, summary.ActiveTasks)
	assert.Equal(t, 3, summary.TotalNotes)
}

func TestAnalyticsSummaryIsolatesFetchFailures(t *testing.T) {
	contacts, deals, calls, tasks, notes := newAnalyticsMocks()

	// Contacts are down; every other metric must still come through.
	contacts.On("Count", mock.Anything).Return(0, errors.New("connection refused"))
	deals.On("FindAll", mock.Anything).Return([]*entity.Deal{
		{Stage: "won", Value: 2000},
	}, nil)
	tasks.On("FindAll", mock.Anything).Return([]*entity.Task{}, nil)
	calls.On("Count", mock.Anything).Return(4, nil)
	notes.On("Count", mock.Anything).Return(1, nil)

	handler := NewAnalyticsHandler(contacts, deals, calls, tasks, notes)

	req := httptest.NewRequest("GET", "/api/analytics/summary", nil)
	w := httptest.NewRecorder()
	handler.HandleSummary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary AnalyticsSummary
	json.NewDecoder(w.Body).Decode(&summary)

	assert.Equal(t, 0, summary.TotalContacts)
	assert.Equal(t, 2000.0, summary.TotalRevenue)
	assert.Equal(t, 4, summary.TotalCalls)
	assert.Equal(t, 1, summary.TotalNotes)
}

func TestDashboardMetrics(t *testing.T) {
	contacts, deals, calls, tasks, notes := newAnalyticsMocks()

	recent := []*entity.Contact{
		{ID: "1", FirstName: "Priya", Email: "priya@example.com"},
	}

	contacts.On("Count", mock.Anything).Return(20, nil)
	contacts.On("FindRecent", mock.Anything, 5).Return(recent, nil)
	deals.On("FindAll", mock.Anything).Return([]*entity.Deal{
		{Stage: "negotiation", Value: 8000},
		{Stage: "won", Value: 3000},
	}, nil)
	calls.On("Count", mock.Anything).Return(9, nil)
	tasks.On("Count", mock.Anything).Return(6, nil)
	notes.On("Count", mock.Anything).Return(2, nil)

	handler := NewAnalyticsHandler(contacts, deals, calls, tasks, notes)

	req := httptest.NewRequest("GET", "/api/dashboard", nil)
	w := httptest.NewRecorder()
	handler.HandleDashboard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var metrics DashboardMetrics
	json.NewDecoder(w.Body).Decode(&metrics)

	assert.Equal(t, 20, metrics.TotalContacts)
	assert.Equal(t, 2, metrics.TotalDeals)
	assert.Equal(t, 9, metrics.TotalCalls)
	assert.Equal(t, 6, metrics.TotalTasks)
	assert.Equal(t, 8000.0, metrics.PipelineValue)
	assert.Equal(t, 3000.0, metrics.TotalRevenue)
	assert.Len(t, metrics.RecentContacts, 1)
	assert.Equal(t, "Priya", metrics.RecentContacts[0].FirstName)
}
