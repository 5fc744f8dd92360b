package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"edu_hub/internal/app/service"
	"edu_hub/internal/common"

	"github.com/go-chi/chi/v5"
)

// APIHandler serves the JSON endpoints polled by the dashboard and the pair
// programming page.
type APIHandler struct {
	dashboardService     *service.DashboardService
	collaborationService *service.CollaborationService
}

func NewAPIHandler(ds *service.DashboardService, cs *service.CollaborationService) *APIHandler {
	return &APIHandler{dashboardService: ds, collaborationService: cs}
}

func (h *APIHandler) RegisterRoutes(r chi.Router) {
	r.Get("/analytics_data", h.analyticsData)
	r.Post("/update_pair_code", h.updatePairCode)
	r.Get("/get_pair_code/{sessionID}", h.getPairCode)
}

func (h *APIHandler) analyticsData(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.Analytics(r.Context())
	if err != nil {
		log.Printf("ERROR: Building analytics: %v", err)
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, data)
}

// flexibleID decodes a JSON number or a numeric string.
type flexibleID int

func (id *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return common.Errorf("invalid id %s: %w", b, common.ErrBadRequest)
	}
	*id = flexibleID(n)
	return nil
}

type updatePairCodeRequest struct {
	SessionID *flexibleID `json:"session_id"`
	Code      *string     `json:"code"`
}

func (h *APIHandler) updatePairCode(w http.ResponseWriter, r *http.Request) {
	var req updatePairCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithJSON(w, http.StatusBadRequest, common.SuccessResponse{Success: false, Error: "Invalid request payload"})
		return
	}
	if req.SessionID == nil || req.Code == nil {
		common.RespondWithJSON(w, http.StatusBadRequest, common.SuccessResponse{Success: false, Error: "session_id and code are required"})
		return
	}

	err := h.collaborationService.UpdatePairCode(r.Context(), int(*req.SessionID), *req.Code)
	if errors.Is(err, common.ErrNotFound) {
		common.RespondWithJSON(w, http.StatusNotFound, common.SuccessResponse{Success: false, Error: "Session not found"})
		return
	}
	if err != nil {
		log.Printf("ERROR: Updating pair code for session %d: %v", int(*req.SessionID), err)
		common.RespondWithJSON(w, common.HTTPStatusFromError(err), common.SuccessResponse{Success: false, Error: err.Error()})
		return
	}
	common.RespondWithJSON(w, http.StatusOK, common.SuccessResponse{Success: true})
}

func (h *APIHandler) getPairCode(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := urlParamInt(r, "sessionID")
	if !ok {
		common.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}
	code, err := h.collaborationService.GetPairCode(r.Context(), sessionID)
	if errors.Is(err, common.ErrNotFound) {
		common.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]string{"code": code})
}
