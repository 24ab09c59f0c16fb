package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrPUT = fmt.Errorf("PUT method required for this endpoint")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (app *Application) invalidAuthorization(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Error Authenticating for Endpoint",
		Description:      err.Error(),
		PossibleSolution: "Send a valid " + adminKeyHeader + " header",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) requireMethod(w http.ResponseWriter, r *http.Request, method string, err error) {
	w.Header().Set("Allow", method)
	writeJSON(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        method + " Method Required",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use " + method + " method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidColorFormat(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Invalid Color Format",
		Description:      err.Error(),
		PossibleSolution: "Send six hex digits, optionally prefixed with #, e.g. #ff0000",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidTolerance(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Tolerance Out Of Range",
		Description:      err.Error(),
		PossibleSolution: "Send an integer tolerance between 0 and 80",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}
