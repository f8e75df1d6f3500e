package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the shape of every JSON error response.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageBody carries a confirmation message and an optional booking.
type MessageBody struct {
	Message string `json:"message"`
	Booking any    `json:"booking,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ResponseText writes a plain text body
func ResponseText(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(text))
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 200 OK with {message, booking?}
func ResponseMessage(w http.ResponseWriter, message string, booking any) {
	ResponseJSON(w, http.StatusOK, MessageBody{Message: message, Booking: booking})
}

// returns 201 Created with {message, booking}
func ResponseCreated(w http.ResponseWriter, message string, booking any) {
	ResponseJSON(w, http.StatusCreated, MessageBody{Message: message, Booking: booking})
}

// ------------- Error responses -------------

func responseError(w http.ResponseWriter, code int, message string, err error) {
	body := ErrorBody{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	ResponseJSON(w, code, body)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, err error) {
	responseError(w, http.StatusBadRequest, message, err)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	responseError(w, http.StatusNotFound, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string, err error) {
	responseError(w, http.StatusInternalServerError, message, err)
}

// returns 503 Service Unavailable
func ResponseUnavailable(w http.ResponseWriter, message string, err error) {
	responseError(w, http.StatusServiceUnavailable, message, err)
}
