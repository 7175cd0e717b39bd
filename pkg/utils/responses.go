package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Status   bool     `json:"status"`
	Message  string   `json:"message"`
	Data     any      `json:"data,omitempty"`
	Errors   any      `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Redirect string   `json:"redirect,omitempty"`
}

// ResponseJSON writes the response envelope with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

// ResponseNotice returns 200 OK with warnings and an optional next view.
func ResponseNotice(w http.ResponseWriter, message string, data any, warnings []string, redirect string) {
	ResponseJSON(w, http.StatusOK, Response{
		Status:   true,
		Message:  message,
		Data:     data,
		Warnings: warnings,
		Redirect: redirect,
	})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, Response{Message: message, Errors: errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message, redirect string) {
	ResponseJSON(w, http.StatusUnauthorized, Response{Message: message, Redirect: redirect})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message, redirect string) {
	ResponseJSON(w, http.StatusForbidden, Response{Message: message, Redirect: redirect})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, Response{Message: message})
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusConflict, Response{Message: message})
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusTooManyRequests, Response{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, Response{Message: message})
}
