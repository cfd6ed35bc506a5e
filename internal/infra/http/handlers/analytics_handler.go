package handlers

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type AnalyticsHandler struct {
	Contacts entity.ContactRepositoryInterface
	Deals    entity.DealRepositoryInterface
	CallLogs entity.CallLogRepositoryInterface
	Tasks    entity.TaskRepositoryInterface
	Notes    entity.NoteRepositoryInterface
}

func NewAnalyticsHandler(
	contacts entity.ContactRepositoryInterface,
	deals entity.DealRepositoryInterface,
	callLogs entity.CallLogRepositoryInterface,
	tasks entity.TaskRepositoryInterface,
	notes entity.NoteRepositoryInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		Contacts: contacts,
		Deals:    deals,
		CallLogs: callLogs,
		Tasks:    tasks,
		Notes:    notes,
	}
}

type AnalyticsSummary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	PipelineValue  float64 `json:"pipelineValue"`
	AvgDealSize    float64 `json:"avgDealSize"`
	ConversionRate float64 `json:"conversionRate"`
	TotalContacts  int     `json:"totalContacts"`
	TotalDeals     int     `json:"totalDeals"`
	TotalCalls     int     `json:"totalCalls"`
	ActiveTasks    int     `json:"activeTasks"`
	TotalNotes     int     `json:"totalNotes"`
	WonDeals       int     `json:"wonDeals"`
}

type DashboardMetrics struct {
	TotalContacts  int               `json:"totalContacts"`
	TotalDeals     int               `json:"totalDeals"`
	TotalCalls     int               `json:"totalCalls"`
	TotalTasks     int               `json:"totalTasks"`
	TotalNotes     int               `json:"totalNotes"`
	PipelineValue  float64           `json:"pipelineValue"`
	TotalRevenue   float64           `json:"totalRevenue"`
	RecentContacts []*entity.Contact `json:"recentContacts"`
}

// HandleSummary is GET /api/analytics/summary. The five tables are fetched
// concurrently and a failing fetch only zeroes its own numbers; the response
// never fails because one table was unreadable.
func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		wg       sync.WaitGroup
		deals    []*entity.Deal
		tasks    []*entity.Task
		contacts int
		calls    int
		notes    int
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		deals = h.fetchDeals(ctx)
	}()
	go func() {
		defer wg.Done()
		tasks = h.fetchTasks(ctx)
	}()
	go func() {
		defer wg.Done()
		contacts = h.count(ctx, "contacts", h.Contacts.Count)
	}()
	go func() {
		defer wg.Done()
		calls = h.count(ctx, "call_logs", h.CallLogs.Count)
	}()
	go func() {
		defer wg.Done()
		notes = h.count(ctx, "notes", h.Notes.Count)
	}()
	wg.Wait()

	summary := AnalyticsSummary{
		TotalContacts: contacts,
		TotalDeals:    len(deals),
		TotalCalls:    calls,
		TotalNotes:    notes,
	}

	var totalValue float64
	for _, d := range deals {
		totalValue += d.Value
		switch d.Stage {
		case "won":
			summary.WonDeals++
			summary.TotalRevenue += d.Value
		case "lost":
			// closed, out of the pipeline
		default:
			summary.PipelineValue += d.Value
		}
	}

	if len(deals) > 0 {
		summary.AvgDealSize = totalValue / float64(len(deals))
		summary.ConversionRate = float64(summary.WonDeals) / float64(len(deals)) * 100
	}

	for _, t := range tasks {
		if t.Status != entity.TaskStatusCompleted {
			summary.ActiveTasks++
		}
	}

	writeJSON(w, http.StatusOK, summary)
}

// HandleDashboard is GET /api/dashboard: the landing-page metric cards plus
// the five most recent contacts.
func (h *AnalyticsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		wg      sync.WaitGroup
		metrics DashboardMetrics
		deals   []*entity.Deal
	)

	wg.Add(6)
	go func() {
		defer wg.Done()
		deals = h.fetchDeals(ctx)
	}()
	go func() {
		defer wg.Done()
		metrics.TotalContacts = h.count(ctx, "contacts", h.Contacts.Count)
	}()
	go func() {
		defer wg.Done()
		metrics.TotalCalls = h.count(ctx, "call_logs", h.CallLogs.Count)
	}()
	go func() {
		defer wg.Done()
		metrics.TotalTasks = h.count(ctx, "tasks", h.Tasks.Count)
	}()
	go func() {
		defer wg.Done()
		metrics.TotalNotes = h.count(ctx, "notes", h.Notes.Count)
	}()
	go func() {
		defer wg.Done()
		recent, err := h.Contacts.FindRecent(ctx, 5)
		if err != nil {
			log.Printf("analytics: recent contacts fetch failed: %v", err)
			recent = nil
		}
		metrics.RecentContacts = recent
	}()
	wg.Wait()

	metrics.TotalDeals = len(deals)
	for _, d := range deals {
		switch d.Stage {
		case "won":
			metrics.TotalRevenue += d.Value
		case "lost":
		default:
			metrics.PipelineValue += d.Value
		}
	}

	if metrics.RecentContacts == nil {
		metrics.RecentContacts = []*entity.Contact{}
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *AnalyticsHandler) fetchDeals(ctx context.Context) []*entity.Deal {
	deals, err := h.Deals.FindAll(ctx)
	if err != nil {
		log.Printf("analytics: deals fetch failed: %v", err)
		return nil
	}
	return deals
}

func (h *AnalyticsHandler) fetchTasks(ctx context.Context) []*entity.Task {
	tasks, err := h.Tasks.FindAll(ctx)
	if err != nil {
		log.Printf("analytics: tasks fetch failed: %v", err)
		return nil
	}
	return tasks
}

func (h *AnalyticsHandler) count(ctx context.Context, table string, fn func(context.Context) (int, error)) int {
	n, err := fn(ctx)
	if err != nil {
		log.Printf("analytics: %s count failed: %v", table, err)
		return 0
	}
	return n
}
