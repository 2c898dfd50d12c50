package utils

import (
	"encoding/json"
	"net/http"
)

type HTTPMessageResponse struct {
	Message string `json:"message"`
}

type HTTPValidationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, HTTPMessageResponse{
		Message: message,
	})
}

func RespondWithValidationErrors(w http.ResponseWriter, violations map[string]string) {
	RespondWithJSON(w, http.StatusBadRequest, HTTPValidationResponse{
		Message: "Invalid request payload",
		Errors:  violations,
	})
}

func RespondNoContent(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
