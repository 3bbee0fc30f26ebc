package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/fleetpos/fleet-pos/internal/report"
)

// SnapshotSource loads a point-in-time view of the record store for the
// report engine.
type SnapshotSource interface {
	Load(ctx context.Context) (report.Snapshot, error)
}

// ReportHandler handles report generation and export
type ReportHandler struct {
	source SnapshotSource

	mu     sync.Mutex
	latest *report.Report
}

// NewReportHandler creates a new report handler
func NewReportHandler(source SnapshotSource) *ReportHandler {
	return &ReportHandler{source: source}
}

// Generate serves POST /api/reports: builds a report from the current state
// of the record store and the posted configuration.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var cfg report.Config
	if err := json.Unmarshal(body, &cfg); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if cfg.Type == "" {
		cfg.Type = report.TypeCompleteOverview
	}
	if !report.IsValidType(cfg.Type) {
		http.Error(w, "Invalid report type", http.StatusBadRequest)
		return
	}
	if cfg.StartDate.IsZero() || cfg.EndDate.IsZero() {
		http.Error(w, "Start and end dates are required", http.StatusBadRequest)
		return
	}

	snap, err := h.source.Load(r.Context())
	if err != nil {
		http.Error(w, "Failed to load records", http.StatusInternalServerError)
		return
	}

	rep := report.Generate(snap, cfg)

	h.mu.Lock()
	h.latest = &rep
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rep)
}

// Export serves GET /api/reports/export?format=: exports the most recently
// generated report as a downloadable document. Nothing is recomputed.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	rep := h.latest
	h.mu.Unlock()
	if rep == nil {
		http.Error(w, "No report generated yet", http.StatusNotFound)
		return
	}

	format := report.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = report.FormatJSON
	}

	doc, err := report.Export(*rep, format)
	if err != nil {
		if errors.Is(err, report.ErrFormatNotAvailable) {
			http.Error(w, "Export format not yet available", http.StatusNotImplemented)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Body)
}
