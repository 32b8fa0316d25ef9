package handler

import (
	"net/http"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/sheet"
)

// UploadDaily decodes a daily snapshot file, reconciles it against the
// current reference table, persists the batch, and returns the enriched
// records rather than a bare acknowledgment.
func (h *InventoryHandler) UploadDaily(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, entity.ErrInputMissing)
		return
	}
	defer file.Close()

	rows, err := sheet.Decode(file)
	if err != nil {
		log.Errorf("[DailyUpload] Failed to decode workbook: %v", err)
		writeJSON(w, http.StatusBadRequest, APIResponse{Status: "error", Message: err.Error()})
		return
	}

	records, err := h.Usecase.ReconcileDailyBatch(rows, time.Now().UTC())
	if err != nil {
		log.Errorf("[DailyUpload] Reconciliation failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Status: "success", Data: records})
}

// ListDaily returns every daily record, most recent capture first.
func (h *InventoryHandler) ListDaily(w http.ResponseWriter, r *http.Request) {
	records, err := h.Usecase.ListDailyRecords()
	if err != nil {
		log.Errorf("[DailyList] Fetch failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Status: "success", Data: records})
}

// DailySummary returns the banded per-day cost series plus the grand total
// in millions.
func (h *InventoryHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Usecase.DailySummary()
	if err != nil {
		log.Errorf("[DailySummary] Aggregation failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Status: "success", Data: summary})
}
