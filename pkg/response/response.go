package response

import (
	"encoding/json"
	"net/http"
)

type Health struct {
	Status string `json:"status"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
