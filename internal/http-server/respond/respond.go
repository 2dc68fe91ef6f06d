package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"shopadmin/internal/apis/backend/endpoints"
	"shopadmin/internal/apis/backend/failure"
)

type ErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string) {
	var b ErrorBody
	b.Error.Code = code
	b.Error.Message = msg
	WriteJSON(w, status, b)
}

// WriteBackendError renders a failed backend call. Network and server failures
// go to the maintenance view; backend client failures keep their status with msg.
func WriteBackendError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if failure.Classify(err).Unavailable() {
		http.Redirect(w, r, failure.MaintenanceLocation, http.StatusSeeOther)
		return
	}

	var apiErr *endpoints.APIError
	switch {
	case errors.As(err, &apiErr):
		code := "backend_error"
		if apiErr.Status == http.StatusNotFound {
			code = "not_found"
		}
		WriteError(w, apiErr.Status, code, msg)
	case errors.Is(err, context.DeadlineExceeded):
		WriteError(w, http.StatusGatewayTimeout, "timeout", msg)
	case errors.Is(err, context.Canceled):
		// client went away
	default:
		WriteError(w, http.StatusBadRequest, "bad_request", msg+": "+err.Error())
	}
}
