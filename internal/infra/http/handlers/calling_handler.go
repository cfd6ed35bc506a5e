package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type CallingHandler struct {
	InitiateCallUC *usecase.InitiateCallUseCase
	CallLogs       entity.CallLogRepositoryInterface
}

func NewCallingHandler(uc *usecase.InitiateCallUseCase, callLogs entity.CallLogRepositoryInterface) *CallingHandler {
	return &CallingHandler{
		InitiateCallUC: uc,
		CallLogs:       callLogs,
	}
}

// HandleInitiate is POST /api/calling/initiate.
func (h *CallingHandler) HandleInitiate(w http.ResponseWriter, r *http.Request) {
	var input usecase.InitiateCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := h.InitiateCallUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		log.Printf("initiate call failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to initiate call")
		return
	}

	middleware.RecordCallInitiated(result.Status)
	writeJSON(w, http.StatusOK, result)
}

// HandleListCalls is GET /api/calls: the call history, newest first.
func (h *CallingHandler) HandleListCalls(w http.ResponseWriter, r *http.Request) {
	calls, err := h.CallLogs.FindAll(r.Context())
	if err != nil {
		log.Printf("fetch call logs failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch calls")
		return
	}

	if calls == nil {
		calls = []*entity.CallLog{}
	}
	writeJSON(w, http.StatusOK, calls)
}
