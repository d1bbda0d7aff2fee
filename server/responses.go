package server

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// GenericResponse is the envelope wrapping every API payload: Success=true
// with populated Data for OK responses, Success=false with a
// human-readable Message otherwise.
type GenericResponse struct {
	Success bool   `json:"Success"`
	Message string `json:"Message,omitempty"`
	Data    any    `json:"Data,omitempty"`
}

func respondOK(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, GenericResponse{Success: true, Data: data})
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondError(w, http.StatusBadRequest, message)
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	respondError(w, http.StatusUnauthorized, message)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, GenericResponse{Success: false, Message: message})
}

func respondJSON(w http.ResponseWriter, status int, resp GenericResponse) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
