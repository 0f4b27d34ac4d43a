package handler

import (
	"net/http"

	"hospital-management/pkg/response"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports whether the store answers a ping.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "unavailable"})
		return
	}
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
