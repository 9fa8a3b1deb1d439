package response

import (
	"encoding/json"
	"net/http"
)

// The wire shapes here match what the Medicor web client already
// parses: errors are `{"message": ...}`, success payloads are written
// as-is at the top level (no envelope).

type ErrorBody struct {
	Message string `json:"message"`
}

// StatusBody is used by endpoints that report `{"success": ..., "message": ...}`.
type StatusBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Message: message})
}

// Failure writes a `{success:false, message}` body for the report and
// contact endpoints.
func Failure(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, StatusBody{Success: false, Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Invalid request body"
	}
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
