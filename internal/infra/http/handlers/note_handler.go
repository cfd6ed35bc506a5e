package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-crm/internal/entity"
)

type NoteHandler struct {
	Repo entity.NoteRepositoryInterface
}

func NewNoteHandler(repo entity.NoteRepositoryInterface) *NoteHandler {
	return &NoteHandler{Repo: repo}
}

type createNoteRequest struct {
	Content   string `json:"content"`
	ContactID string `json:"contact_id"`
	DealID    string `json:"deal_id"`
}

func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("fetch notes failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}

	if notes == nil {
		notes = []*entity.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	note := entity.NewNote(req.Content, req.ContactID, req.DealID)

	if err := h.Repo.Create(r.Context(), note); err != nil {
		log.Printf("create note failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create note")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		log.Printf("delete note %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
