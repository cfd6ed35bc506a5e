package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type ContactHandler struct {
	CreateContactUC *usecase.CreateContactUseCase
	Repo            entity.ContactRepositoryInterface
}

func NewContactHandler(uc *usecase.CreateContactUseCase, repo entity.ContactRepositoryInterface) *ContactHandler {
	return &ContactHandler{
		CreateContactUC: uc,
		Repo:            repo,
	}
}

// HandleList is GET /api/contacts: every row, newest first, no pagination.
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("fetch contacts failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}

	if contacts == nil {
		contacts = []*entity.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// HandleCreate is POST /api/contacts.
func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	contact, err := h.CreateContactUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		log.Printf("create contact failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

// HandleDelete is DELETE /api/contacts/{id}.
func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		log.Printf("delete contact %s failed: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
