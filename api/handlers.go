package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/color-game/schemefinder/models"
	"github.com/color-game/schemefinder/palette"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Color Scheme Finder API")
}

// GET /v1/colors/convert?hex=ff0000
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	color, err := palette.HexToHSL(r.URL.Query().Get("hex"))
	if err != nil {
		app.invalidColorFormat(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewColorHSL(color))
}

// GET /v1/schemes - every loaded scheme in load order
func (app *Application) getAllSchemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	app.coreMu.Lock()
	schemes := app.Palettes.Schemes()
	app.coreMu.Unlock()

	writeJSON(w, http.StatusOK, models.NewSchemeListResponse(schemes))
}

// GET /v1/reference
func (app *Application) getReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	session, ok := sessionFromContext(r.Context())
	if !ok {
		app.internalServerError(w, r, errors.New("no session on request"))
		return
	}

	app.coreMu.Lock()
	state := session.Finder.State()
	app.coreMu.Unlock()

	writeJSON(w, http.StatusOK, models.NewReferenceStateResponse(state))
}

// PUT /v1/reference/color
func (app *Application) setBaseColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requireMethod(w, r, http.MethodPut, ErrPUT)
		return
	}

	session, ok := sessionFromContext(r.Context())
	if !ok {
		app.internalServerError(w, r, errors.New("no session on request"))
		return
	}

	var req models.BaseColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	app.coreMu.Lock()
	err := session.Finder.SetBaseColor(req.Hex)
	state := session.Finder.State()
	app.coreMu.Unlock()

	if err != nil {
		app.invalidColorFormat(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewReferenceStateResponse(state))
}

// PUT /v1/reference/tolerance
func (app *Application) setTolerance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requireMethod(w, r, http.MethodPut, ErrPUT)
		return
	}

	session, ok := sessionFromContext(r.Context())
	if !ok {
		app.internalServerError(w, r, errors.New("no session on request"))
		return
	}

	var req models.ToleranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if req.Tolerance == nil {
		app.badRequest(w, r, errors.New("tolerance is required"))
		return
	}

	if err := palette.ValidateTolerance(*req.Tolerance); err != nil {
		app.invalidTolerance(w, r, err)
		return
	}

	app.coreMu.Lock()
	session.Finder.SetTolerance(*req.Tolerance)
	state := session.Finder.State()
	app.coreMu.Unlock()

	writeJSON(w, http.StatusOK, models.NewReferenceStateResponse(state))
}

// GET /v1/schemes/matching
func (app *Application) getMatchingSchemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireMethod(w, r, http.MethodGet, ErrGET)
		return
	}

	session, ok := sessionFromContext(r.Context())
	if !ok {
		app.internalServerError(w, r, errors.New("no session on request"))
		return
	}

	app.coreMu.Lock()
	matched := session.Finder.MatchingSchemes()
	app.coreMu.Unlock()

	writeJSON(w, http.StatusOK, models.NewSchemeListResponse(matched))
}

// POST /v1/admin/schemes/load - appends schemes for every session
func (app *Application) loadSchemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requireMethod(w, r, http.MethodPost, ErrPOST)
		return
	}

	var req models.LoadSchemesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if len(req.Schemes) == 0 {
		app.badRequest(w, r, errors.New("schemes is required"))
		return
	}

	// Reject malformed input before anything is stored.
	if err := palette.NewRepository().Load(req.Schemes); err != nil {
		app.invalidColorFormat(w, r, err)
		return
	}

	app.coreMu.Lock()
	defer app.coreMu.Unlock()

	if err := app.SchemeRepo.Append(req.Schemes); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.Palettes.Load(req.Schemes); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	total := app.Palettes.Len()
	log.Printf("loaded %d schemes, %d total", len(req.Schemes), total)

	writeJSON(w, http.StatusOK, models.LoadSchemesResponse{
		Loaded: len(req.Schemes),
		Total:  total,
	})
}
