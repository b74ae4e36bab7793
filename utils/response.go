package utils

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"travelhub/apperrors"
)

// Pagination echoes the page window applied to a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Envelope is the response shape shared by every endpoint.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Total      *int64      `json:"total,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func RespondSuccess(w http.ResponseWriter, statusCode int, data any) {
	RespondWithJSON(w, statusCode, Envelope{Success: true, Data: data})
}

func RespondList(w http.ResponseWriter, data any, total int64, page, limit int) {
	RespondWithJSON(w, http.StatusOK, Envelope{
		Success:    true,
		Data:       data,
		Total:      &total,
		Pagination: &Pagination{Page: page, Limit: limit},
	})
}

func RespondMessage(w http.ResponseWriter, statusCode int, msg string) {
	RespondWithJSON(w, statusCode, Envelope{Success: true, Message: msg})
}

func RespondWithError(w http.ResponseWriter, statusCode int, msg string) {
	RespondWithJSON(w, statusCode, Envelope{Success: false, Message: msg})
}

// RespondError translates a store error into the documented status
// code. Unexpected errors become a bare 500 unless running in
// development mode.
func RespondError(w http.ResponseWriter, err error) {
	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		if os.Getenv("APP_ENV") != "development" {
			RespondWithError(w, code, "internal server error")
			return
		}
	}
	RespondWithError(w, code, err.Error())
}
