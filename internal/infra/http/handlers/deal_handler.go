package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-crm/internal/entity"
)

type DealHandler struct {
	Repo entity.DealRepositoryInterface
}

func NewDealHandler(repo entity.DealRepositoryInterface) *DealHandler {
	return &DealHandler{Repo: repo}
}

type createDealRequest struct {
	Title             string  `json:"title"`
	Value             float64 `json:"value"`
	Stage             string  `json:"stage"`
	ContactID         string  `json:"contact_id"`
	ExpectedCloseDate string  `json:"expected_close_date"`
}

func (h *DealHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	deals, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("fetch deals failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch deals")
		return
	}

	if deals == nil {
		deals = []*entity.Deal{}
	}
	writeJSON(w, http.StatusOK, deals)
}

func (h *DealHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	deal := entity.NewDeal(req.Title, req.Value, req.Stage, req.ContactID, req.ExpectedCloseDate)

	if err := h.Repo.Create(r.Context(), deal); err != nil {
		log.Printf("create deal failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create deal")
		return
	}

	writeJSON(w, http.StatusCreated, deal)
}

// HandlePipeline is GET /api/deals/pipeline: the kanban columns, one
// StageSummary per known stage in board order.
func (h *DealHandler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	deals, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("fetch deals failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch deals")
		return
	}

	writeJSON(w, http.StatusOK, BuildPipeline(deals))
}

func (h *DealHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		log.Printf("delete deal %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete deal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BuildPipeline groups deals into the fixed stage order. Deals with an
// unknown stage are left out, mirroring how the board renders them.
func BuildPipeline(deals []*entity.Deal) []entity.StageSummary {
	summaries := make([]entity.StageSummary, 0, len(entity.PipelineStages))

	for _, stage := range entity.PipelineStages {
		summary := entity.StageSummary{Stage: stage}
		for _, d := range deals {
			if d.Stage == stage {
				summary.Count++
				summary.Total += d.Value
			}
		}
		summaries = append(summaries, summary)
	}

	return summaries
}
