package controllers

import (
	"github.com/radhian/inventory-costing/handler"
	"github.com/radhian/inventory-costing/infra/db/dao"
	usecase "github.com/radhian/inventory-costing/usecase/inventory"

	"github.com/gorilla/mux"
)

func RegisterInventoryRoutes(router *mux.Router, d dao.DaoMethod) {
	h := handler.NewInventoryHandler(usecase.NewInventoryUsecase(d))

	router.HandleFunc("/api/reference/upload", h.UploadReference).Methods("POST")
	router.HandleFunc("/api/reference/json", h.IngestReferenceJSON).Methods("POST")
	router.HandleFunc("/api/reference", h.ListReference).Methods("GET")
	router.HandleFunc("/api/daily/upload", h.UploadDaily).Methods("POST")
	router.HandleFunc("/api/daily/summary", h.DailySummary).Methods("GET")
	router.HandleFunc("/api/daily", h.ListDaily).Methods("GET")
}
