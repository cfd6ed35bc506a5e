package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-crm/internal/entity"
)

type TaskHandler struct {
	Repo entity.TaskRepositoryInterface
}

func NewTaskHandler(repo entity.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{Repo: repo}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ContactID   string `json:"contact_id"`
	DealID      string `json:"deal_id"`
	DueDate     string `json:"due_date"`
}

type updateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("fetch tasks failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	if tasks == nil {
		tasks = []*entity.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	task := entity.NewTask(req.Title, req.Description, req.ContactID, req.DealID, req.DueDate)

	if err := h.Repo.Create(r.Context(), task); err != nil {
		log.Printf("create task failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// HandleUpdateStatus is PUT /api/tasks/{id}/status, the pending/completed toggle.
func (h *TaskHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}

	var req updateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Status != entity.TaskStatusPending && req.Status != entity.TaskStatusCompleted {
		writeError(w, http.StatusBadRequest, "Status must be pending or completed")
		return
	}

	if err := h.Repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		log.Printf("update task %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		log.Printf("delete task %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
