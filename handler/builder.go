package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radhian/inventory-costing/entity"
	usecase "github.com/radhian/inventory-costing/usecase/inventory"
)

type InventoryHandler struct {
	Usecase usecase.InventoryUsecase
}

func NewInventoryHandler(uc usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{Usecase: uc}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// writeError maps the error kind to an HTTP status. Input and schema
// problems are the caller's fault; storage failures are ours.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var malformed *entity.MalformedValueError
	switch {
	case errors.Is(err, entity.ErrInputMissing),
		errors.Is(err, entity.ErrSchemaAbsence),
		errors.As(err, &malformed):
		status = http.StatusBadRequest
	}

	writeJSON(w, status, APIResponse{
		Status:  "error",
		Message: err.Error(),
	})
}
