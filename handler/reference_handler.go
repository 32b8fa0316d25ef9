package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/gommon/log"
	"github.com/radhian/inventory-costing/entity"
	"github.com/radhian/inventory-costing/infra/sheet"
)

type insertedCountResponse struct {
	InsertedCount int64 `json:"insertedCount"`
}

// UploadReference bulk-loads the pricing reference table from an uploaded
// xlsx file.
func (h *InventoryHandler) UploadReference(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, entity.ErrInputMissing)
		return
	}
	defer file.Close()

	rows, err := sheet.Decode(file)
	if err != nil {
		log.Errorf("[ReferenceUpload] Failed to decode workbook: %v", err)
		writeJSON(w, http.StatusBadRequest, APIResponse{Status: "error", Message: err.Error()})
		return
	}

	count, err := h.Usecase.IngestReferenceBatch(rows)
	if err != nil {
		log.Errorf("[ReferenceUpload] Ingest failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status:  "success",
		Message: "Reference data uploaded",
		Data:    insertedCountResponse{InsertedCount: count},
	})
}

// IngestReferenceJSON bulk-loads the pricing reference table from parallel
// items and unitCosts arrays.
func (h *InventoryHandler) IngestReferenceJSON(w http.ResponseWriter, r *http.Request) {
	var req entity.ReferenceJSONRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, APIResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	count, err := h.Usecase.IngestReferenceJSON(req)
	if err != nil {
		log.Errorf("[ReferenceJSON] Ingest failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Status:  "success",
		Message: "Reference data inserted via JSON",
		Data:    insertedCountResponse{InsertedCount: count},
	})
}

func (h *InventoryHandler) ListReference(w http.ResponseWriter, r *http.Request) {
	items, err := h.Usecase.ListReferenceItems()
	if err != nil {
		log.Errorf("[ReferenceList] Fetch failed: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{Status: "success", Data: items})
}
