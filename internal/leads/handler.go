package leads

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mckingstown/salon-bot/pkg/logging"
)

// Handler serves the franchise team's lead dashboard API.
type Handler struct {
	store  Store
	logger *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(store Store, logger *logging.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Routes mounts the dashboard endpoints on a chi router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/leads", h.ListLeads)
	r.Get("/leads/export", h.ExportCSV)
	r.Get("/leads/summary", h.GetSummary)
	r.Get("/leads/{leadID}", h.GetLead)
	r.Patch("/leads/{leadID}/status", h.UpdateStatus)
	r.Post("/leads/{leadID}/notes", h.AddNote)
}

// ListLeadsResponse is the response for listing leads
type ListLeadsResponse struct {
	Leads []*Lead `json:"leads"`
	Count int     `json:"count"`
}

// ListLeads handles GET /dashboard/leads requests
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	filter := Filter{
		Phone: r.URL.Query().Get("phone"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		if !ValidStatus(Status(status)) {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		filter.Status = Status(status)
	}

	leads, err := h.store.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		http.Error(w, "failed to list leads", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ListLeadsResponse{Leads: leads, Count: len(leads)})
}

// GetLead handles GET /dashboard/leads/{leadID} requests
func (h *Handler) GetLead(w http.ResponseWriter, r *http.Request) {
	lead, err := h.store.GetByID(r.Context(), chi.URLParam(r, "leadID"))
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get lead", "error", err)
		http.Error(w, "failed to get lead", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

// UpdateStatusRequest is the body for a status change.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// UpdateStatus handles PATCH /dashboard/leads/{leadID}/status requests
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.store.UpdateStatus(r.Context(), chi.URLParam(r, "leadID"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			http.Error(w, "lead not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidStatus):
			http.Error(w, "unknown status", http.StatusBadRequest)
		default:
			h.logger.Error("failed to update lead status", "error", err)
			http.Error(w, "failed to update lead", http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("lead status updated", "id", lead.ID, "status", lead.Status)
	writeJSON(w, http.StatusOK, lead)
}

// AddNoteRequest is the body for appending a note.
type AddNoteRequest struct {
	Text string `json:"text"`
}

// AddNote handles POST /dashboard/leads/{leadID}/notes requests
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.store.AppendNote(r.Context(), chi.URLParam(r, "leadID"), Note{
		Text: req.Text,
		Kind: NoteKindNote,
	})
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to append note", "error", err)
		http.Error(w, "failed to append note", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

// GetSummary handles GET /dashboard/leads/summary requests
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.store.Summary(r.Context())
	if err != nil {
		h.logger.Error("failed to summarize leads", "error", err)
		http.Error(w, "failed to summarize leads", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// csvHeader is the fixed export column order the franchise team's sheets
// are built around.
var csvHeader = []string{
	"ID", "Phone", "Name", "Location", "Enquiry Type",
	"Status", "Regional Advisor", "Created At", "Forwarded At",
}

// ExportCSV handles GET /dashboard/leads/export requests
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	leads, err := h.store.List(r.Context(), Filter{})
	if err != nil {
		h.logger.Error("failed to export leads", "error", err)
		http.Error(w, "failed to export leads", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=franchise-leads-%s.csv", time.Now().Format("2006-01-02")))

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	for _, lead := range leads {
		forwarded := ""
		if lead.ForwardedAt != nil {
			forwarded = lead.ForwardedAt.Format(time.RFC3339)
		}
		_ = cw.Write([]string{
			lead.ID, lead.Phone, lead.Name, lead.Location,
			lead.EnquiryType, string(lead.Status), lead.RegionalAdvisor,
			lead.CreatedAt.Format(time.RFC3339), forwarded,
		})
	}
	cw.Flush()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
